package provider

import "github.com/Sohilkhan0021/anceller-admin-sub002/models"

// AggregateKYCStatus rolls a provider's document set up into the
// provider-level KYC status:
//
//	any REJECTED                    -> rejected
//	all VERIFIED (at least one doc) -> approved
//	some decided, some PENDING      -> under-review
//	otherwise                       -> pending
//
// The backend computes the authoritative aggregate; this rollup lets the
// console render the expected value immediately after a refetch and verify
// the two agree.
func AggregateKYCStatus(docs []models.KYCDocument) models.KYCStatus {
	if len(docs) == 0 {
		return models.KYCStatusPending
	}

	var verified, rejected, pending int
	for _, d := range docs {
		switch d.VerificationStatus {
		case models.DocumentStatusVerified:
			verified++
		case models.DocumentStatusRejected:
			rejected++
		default:
			pending++
		}
	}

	switch {
	case rejected > 0:
		return models.KYCStatusRejected
	case pending == 0:
		return models.KYCStatusApproved
	case verified > 0:
		return models.KYCStatusUnderReview
	default:
		return models.KYCStatusPending
	}
}
