package models

// Row types returned by the analytics service. Plain data for the caller to
// render or export; no charting here.

type BookingVolumeByRoleHour struct {
	Role  string `json:"role"`
	Hour  int    `json:"hour"`
	Count int    `json:"count"`
}

type ApprovalRateByRole struct {
	Role     string `json:"role"`
	Approved int    `json:"approved"`
	Total    int    `json:"total"`
}

type AverageInductionScoreByLab struct {
	LabID        string  `json:"labId"`
	LabName      string  `json:"labName"`
	AverageScore float64 `json:"averageScore"`
}

type EquipmentBookedHoursByWeek struct {
	EquipmentID   string  `json:"equipmentId"`
	EquipmentName string  `json:"equipmentName"`
	ISOWeek       int     `json:"isoWeek"`
	Hours         float64 `json:"hours"`
}
