package negotiation_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/realty-hub/realty-hub/internal/domain/negotiation"
	"github.com/realty-hub/realty-hub/internal/domain/negotiation/mocks"
	"github.com/realty-hub/realty-hub/internal/domain/property"
)

// testUOW is the sentinel unit of work the mocked transaction manager hands
// to transactional closures; expectations match it to prove a write joined
// the transaction.
var testUOW = struct{ tag string }{"test-uow"}

type fixtures struct {
	negotiations *mocks.MockRepository
	properties   *mocks.MockPropertiesRepository
	documents    *mocks.MockDocumentsRepository
	txManager    *mocks.MockTransactionManager
	events       *mocks.MockEventBus
	renderer     *mocks.MockProposalRenderer
}

func newFixtures(ctrl *gomock.Controller) *fixtures {
	return &fixtures{
		negotiations: mocks.NewMockRepository(ctrl),
		properties:   mocks.NewMockPropertiesRepository(ctrl),
		documents:    mocks.NewMockDocumentsRepository(ctrl),
		txManager:    mocks.NewMockTransactionManager(ctrl),
		events:       mocks.NewMockEventBus(ctrl),
		renderer:     mocks.NewMockProposalRenderer(ctrl),
	}
}

func (f *fixtures) env(snap *negotiation.Snapshot) negotiation.Context {
	return negotiation.Context{
		Snapshot:     snap,
		Negotiations: f.negotiations,
		Properties:   f.properties,
		Documents:    f.documents,
		TxManager:    f.txManager,
		Events:       f.events,
	}
}

// expectTx wires the transaction manager to execute the closure with the
// sentinel unit of work, committing on nil and propagating the error
// otherwise, mirroring the real manager's contract.
func (f *fixtures) expectTx() *gomock.Call {
	return f.txManager.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, negotiation.UnitOfWork) error) error {
			return fn(ctx, testUOW)
		})
}

func snapshotIn(status negotiation.Status) *negotiation.Snapshot {
	broker := int64(101)
	return &negotiation.Snapshot{
		ID:                uuid.New(),
		Status:            status,
		Version:           1,
		PropertyID:        10,
		CapturingBrokerID: broker,
		SellingBrokerID:   &broker,
	}
}

func TestStaleSnapshotAlwaysConflicts(t *testing.T) {
	// Every transition operation must refuse to run when the snapshot the
	// state was built from no longer matches the state's declared status.
	// No repository expectation is registered: a write attempt fails the test.
	cases := []struct {
		name    string
		status  negotiation.Status
		stale   negotiation.Status
		invoke  func(t *testing.T, st negotiation.State) error
	}{
		{
			name:   "updateDraft",
			status: negotiation.StatusProposalDraft,
			stale:  negotiation.StatusProposalSent,
			invoke: func(t *testing.T, st negotiation.State) error {
				_, err := st.(*negotiation.DraftState).UpdateDraft(context.Background(), negotiation.DraftUpdateInput{SelfAsSellingBroker: true})
				return err
			},
		},
		{
			name:   "sendProposal",
			status: negotiation.StatusProposalDraft,
			stale:  negotiation.StatusCancelled,
			invoke: func(t *testing.T, st negotiation.State) error {
				_, err := st.(*negotiation.DraftState).SendProposal(context.Background(), 1, nil, nil)
				return err
			},
		},
		{
			name:   "approveProposal",
			status: negotiation.StatusProposalSent,
			stale:  negotiation.StatusInNegotiation,
			invoke: func(t *testing.T, st negotiation.State) error {
				_, err := st.(*negotiation.ProposalSentState).ApproveProposal(context.Background(), 1, nil)
				return err
			},
		},
		{
			name:   "requestDocumentation",
			status: negotiation.StatusInNegotiation,
			stale:  negotiation.StatusCancelled,
			invoke: func(t *testing.T, st negotiation.State) error {
				_, err := st.(*negotiation.InNegotiationState).RequestDocumentation(context.Background(), 1, nil)
				return err
			},
		},
		{
			name:   "moveToContractDrafting",
			status: negotiation.StatusDocumentationPhase,
			stale:  negotiation.StatusCancelled,
			invoke: func(t *testing.T, st negotiation.State) error {
				_, err := st.(*negotiation.DocumentationPhaseState).MoveToContractDrafting(context.Background(), 1, nil)
				return err
			},
		},
		{
			name:   "uploadFinalContract",
			status: negotiation.StatusContractDrafting,
			stale:  negotiation.StatusAwaitingSignatures,
			invoke: func(t *testing.T, st negotiation.State) error {
				_, err := st.(*negotiation.ContractDraftingState).UploadFinalContract(context.Background(), 1, nil)
				return err
			},
		},
		{
			name:   "markSold",
			status: negotiation.StatusAwaitingSignatures,
			stale:  negotiation.StatusSold,
			invoke: func(t *testing.T, st negotiation.State) error {
				_, err := st.(*negotiation.AwaitingSignaturesState).MarkSold(context.Background(), 1, nil)
				return err
			},
		},
		{
			name:   "cancel",
			status: negotiation.StatusAwaitingSignatures,
			stale:  negotiation.StatusRented,
			invoke: func(t *testing.T, st negotiation.State) error {
				_, err := st.(*negotiation.AwaitingSignaturesState).Cancel(context.Background(), 1, nil)
				return err
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newFixtures(ctrl)

			snap := snapshotIn(tc.status)
			st, err := negotiation.NewState(f.env(snap))
			require.NoError(t, err)

			// A concurrent transition commits and the snapshot goes stale.
			snap.Status = tc.stale

			err = tc.invoke(t, st)
			require.Error(t, err)
			require.True(t, negotiation.IsConflict(err))
		})
	}
}

func TestApproveProposalReservesProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixtures(ctrl)

	snap := snapshotIn(negotiation.StatusProposalSent)
	f.expectTx()
	f.negotiations.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Eq(negotiation.UnitOfWork(testUOW)), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ negotiation.UnitOfWork, upd negotiation.StatusUpdate) (int64, error) {
			assert.Equal(t, snap.ID, upd.ID)
			assert.Equal(t, negotiation.StatusProposalSent, upd.FromStatus)
			assert.Equal(t, negotiation.StatusInNegotiation, upd.ToStatus)
			assert.Equal(t, 1, upd.ExpectedVersion)
			assert.Equal(t, int64(999), upd.ActorID)
			return 1, nil
		})
	f.properties.EXPECT().
		MarkUnderNegotiation(gomock.Any(), gomock.Eq(negotiation.UnitOfWork(testUOW)), int64(10)).
		Return(nil)

	st, err := negotiation.NewState(f.env(snap))
	require.NoError(t, err)

	next, err := st.(*negotiation.ProposalSentState).ApproveProposal(context.Background(), 999, nil)
	require.NoError(t, err)
	require.Equal(t, negotiation.StatusInNegotiation, next.Status)
	require.Equal(t, 2, next.Version)

	// Nothing else moved.
	assert.Equal(t, snap.ID, next.ID)
	assert.Equal(t, snap.PropertyID, next.PropertyID)
	assert.Equal(t, snap.CapturingBrokerID, next.CapturingBrokerID)
	assert.Equal(t, snap.SellingBrokerID, next.SellingBrokerID)
	// The original snapshot is untouched.
	assert.Equal(t, 1, snap.Version)
}

func TestTransitionOptimisticLockConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixtures(ctrl)

	snap := snapshotIn(negotiation.StatusInNegotiation)
	f.expectTx()
	f.negotiations.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), nil)

	st, err := negotiation.NewState(f.env(snap))
	require.NoError(t, err)

	_, err = st.(*negotiation.InNegotiationState).RequestDocumentation(context.Background(), 7, nil)
	require.Error(t, err)
	require.True(t, negotiation.IsConflict(err))
}

func TestCancelReleasesPropertyInSameTransaction(t *testing.T) {
	type cancellable interface {
		Cancel(ctx context.Context, actorID int64, metadata map[string]interface{}) (*negotiation.Snapshot, error)
	}
	statuses := []negotiation.Status{
		negotiation.StatusProposalSent,
		negotiation.StatusInNegotiation,
		negotiation.StatusDocumentationPhase,
		negotiation.StatusContractDrafting,
		negotiation.StatusAwaitingSignatures,
	}
	for _, status := range statuses {
		t.Run(string(status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newFixtures(ctrl)

			snap := snapshotIn(status)
			f.expectTx()
			f.negotiations.EXPECT().
				UpdateStatus(gomock.Any(), gomock.Eq(negotiation.UnitOfWork(testUOW)), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ negotiation.UnitOfWork, upd negotiation.StatusUpdate) (int64, error) {
					assert.Equal(t, status, upd.FromStatus)
					assert.Equal(t, negotiation.StatusCancelled, upd.ToStatus)
					return 1, nil
				})
			f.properties.EXPECT().
				MarkAvailable(gomock.Any(), gomock.Eq(negotiation.UnitOfWork(testUOW)), int64(10)).
				Return(nil)

			st, err := negotiation.NewState(f.env(snap))
			require.NoError(t, err)

			next, err := st.(cancellable).Cancel(context.Background(), 42, nil)
			require.NoError(t, err)
			require.Equal(t, negotiation.StatusCancelled, next.Status)
			require.Equal(t, 2, next.Version)
		})
	}
}

func TestMarkSoldAndRentedCloseTheDeal(t *testing.T) {
	cases := []struct {
		name           string
		target         negotiation.Status
		propertyStatus property.Status
		invoke         func(st *negotiation.AwaitingSignaturesState) (*negotiation.Snapshot, error)
	}{
		{
			name:           "sold",
			target:         negotiation.StatusSold,
			propertyStatus: property.StatusSold,
			invoke: func(st *negotiation.AwaitingSignaturesState) (*negotiation.Snapshot, error) {
				return st.MarkSold(context.Background(), 999, nil)
			},
		},
		{
			name:           "rented",
			target:         negotiation.StatusRented,
			propertyStatus: property.StatusRented,
			invoke: func(st *negotiation.AwaitingSignaturesState) (*negotiation.Snapshot, error) {
				return st.MarkRented(context.Background(), 999, nil)
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newFixtures(ctrl)

			snap := snapshotIn(negotiation.StatusAwaitingSignatures)

			txCall := f.expectTx()
			updateCall := f.negotiations.EXPECT().
				UpdateStatus(gomock.Any(), gomock.Eq(negotiation.UnitOfWork(testUOW)), gomock.Any()).
				Return(int64(1), nil)
			lifecycleCall := f.properties.EXPECT().
				UpdateLifecycleStatus(gomock.Any(), gomock.Eq(negotiation.UnitOfWork(testUOW)), int64(10), tc.propertyStatus).
				Return(nil)
			// The event fires exactly once, only after the transaction ran.
			emitCall := f.events.EXPECT().EmitDealClosed(snap.ID).Times(1)
			gomock.InOrder(txCall, updateCall, lifecycleCall, emitCall)

			st, err := negotiation.NewState(f.env(snap))
			require.NoError(t, err)

			next, err := tc.invoke(st.(*negotiation.AwaitingSignaturesState))
			require.NoError(t, err)
			require.Equal(t, tc.target, next.Status)
			require.Equal(t, 2, next.Version)
		})
	}
}

func TestMarkSoldFailedLockEmitsNoEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixtures(ctrl)

	snap := snapshotIn(negotiation.StatusAwaitingSignatures)
	f.expectTx()
	f.negotiations.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), nil)
	// No EmitDealClosed expectation: an emission fails the test.

	st, err := negotiation.NewState(f.env(snap))
	require.NoError(t, err)

	_, err = st.(*negotiation.AwaitingSignaturesState).MarkSold(context.Background(), 999, nil)
	require.Error(t, err)
	require.True(t, negotiation.IsConflict(err))
}

func TestUploadFinalContractTagsMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixtures(ctrl)

	snap := snapshotIn(negotiation.StatusContractDrafting)
	f.expectTx()
	f.negotiations.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ negotiation.UnitOfWork, upd negotiation.StatusUpdate) (int64, error) {
			assert.Equal(t, negotiation.StatusAwaitingSignatures, upd.ToStatus)
			assert.Equal(t, "contract_uploaded", upd.Metadata["action"])
			assert.Equal(t, "s3://contracts/42.pdf", upd.Metadata["contract_url"])
			return 1, nil
		})

	st, err := negotiation.NewState(f.env(snap))
	require.NoError(t, err)

	// The caller tries to override the action tag; the tag wins.
	next, err := st.(*negotiation.ContractDraftingState).UploadFinalContract(context.Background(), 7, map[string]interface{}{
		"action":       "sneaky_override",
		"contract_url": "s3://contracts/42.pdf",
	})
	require.NoError(t, err)
	require.Equal(t, negotiation.StatusAwaitingSignatures, next.Status)
}
