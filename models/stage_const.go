package models

type CandidateStatus string

const (
	CandidateStatusSourced   CandidateStatus = "Sourced"
	CandidateStatusScreening CandidateStatus = "Screening"
	CandidateStatusInterview CandidateStatus = "Interview"
	CandidateStatusSelected  CandidateStatus = "Selected"
	CandidateStatusOffered   CandidateStatus = "Offered"
	CandidateStatusOnBoarded CandidateStatus = "On Boarded"
	CandidateStatusDropped   CandidateStatus = "Dropped"
	CandidateStatusRejected  CandidateStatus = "Rejected"
	CandidateStatusOnHold    CandidateStatus = "On Hold"
)

func (s CandidateStatus) IsTerminalExit() bool {
	return s == CandidateStatusDropped || s == CandidateStatusRejected
}

type StaffingPlanStatus string

const (
	StaffingPlanOpen      StaffingPlanStatus = "open"
	StaffingPlanCommitted StaffingPlanStatus = "committed"
	StaffingPlanFulfilled StaffingPlanStatus = "fulfilled"
	StaffingPlanCancelled StaffingPlanStatus = "cancelled"
)

// SpecialStageOrder marks funnel exits/holds that sit outside the
// sequential chain (Dropped, On Hold, Rejected).
const SpecialStageOrder = -1
