package db

// Milestone statuses.
const (
	MilestoneDraft      = "DRAFT"
	MilestoneFunded     = "FUNDED"
	MilestoneInProgress = "IN_PROGRESS"
	MilestoneSubmitted  = "SUBMITTED"
	MilestoneReleased   = "RELEASED"
	MilestoneDisputed   = "DISPUTED"
)

// Escrow ledger entry types.
const (
	LedgerDeposit               = "DEPOSIT"
	LedgerProofSubmitted        = "PROOF_SUBMITTED"
	LedgerRelease               = "RELEASE"
	LedgerPartialRelease        = "PARTIAL_RELEASE"
	LedgerDisputeOpened         = "DISPUTE_OPENED"
	LedgerAdvanceApprovedPayout = "ADVANCE_APPROVED_PAYOUT"
)

// Wallet transaction types and statuses.
const (
	WalletTxDeposit = "DEPOSIT"
	WalletTxHold    = "HOLD"
	WalletTxRelease = "RELEASE"

	WalletTxPosted = "POSTED"
)

// Capital advance statuses.
const (
	AdvanceRequested = "REQUESTED"
	AdvanceApproved  = "APPROVED"
	AdvanceRejected  = "REJECTED"
)

// Dispute statuses and compensation recipients.
const (
	DisputeOpen     = "OPEN"
	DisputeResolved = "RESOLVED"

	RecipientClient = "CLIENT"
	RecipientVendor = "VENDOR"
)

// Webhook delivery statuses.
const (
	WebhookPending   = "PENDING"
	WebhookDelivered = "DELIVERED"
	WebhookFailed    = "FAILED"
)

// Order item stages, in pipeline order.
var OrderStages = []string{
	"RECEIVED",
	"SORTING",
	"WASHING",
	"DRYING",
	"PRESSING",
	"QC_CHECK",
	"PACKED",
	"DELIVERED",
}
