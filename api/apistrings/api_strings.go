package apistrings

const (
	/// Auth
	Unauthorized      = "unauthorized request"
	InvalidBearer     = "invalid token, expects bearer token"
	UserNotFound      = "user or account does not exist"
	RoleNotPermitted  = "your role is not permitted to perform this action"
	FeatureNotEnabled = "this feature is not enabled for your account"

	/// Core Functionality Error
	ServerError = "a server error occurred, please try again later"

	/// Request shape
	InvalidProjectID      = "project id is invalid"
	InvalidMilestoneID    = "milestone id is invalid"
	InvalidAdvanceID      = "advance id is invalid"
	InvalidDisputeID      = "claim id is invalid"
	InvalidUserID         = "user id is invalid"
	InvalidProjectInput   = "check 'title' key, invalid request"
	InvalidMilestoneInput = "check 'title' or 'amountRupees' keys, invalid request"
	InvalidAssignInput    = "check 'vendorId' key, invalid request"
	InvalidOrderItemInput = "check 'label' key, invalid request"
	InvalidActionInput    = "check 'action' or 'releaseAmountRupees' keys, invalid request"
	InvalidAdvanceInput   = "check 'requestedRupees' key, invalid request"
	InvalidDecisionInput  = "check 'action' or 'approvedRupees' keys, invalid request"
	InvalidClaimInput     = "check 'claimType' or 'reason' keys, invalid request"
	InvalidResolveInput   = "check 'resolution', 'compensationRupees' or 'compensationRecipient' keys, invalid request"
	InvalidDepositInput   = "check 'userId', 'amountRupees' or 'reference' keys, invalid request"
	InvalidFeatureInput   = "check 'key' or 'enabled' keys, invalid request"
	InvalidWebhookInput   = "check 'url' key, invalid request"
	UnknownAction         = "unknown action"
)
