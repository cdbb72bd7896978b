package dto

// DistributionItemDTO — одна строка агрегата «ключ → количество».
type DistributionItemDTO struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// ReportDTO — все агрегаты панели: считаются заново на каждый запрос,
// нигде не сохраняются.
type ReportDTO struct {
	Total               int                   `json:"total"`
	StatusDistribution  []DistributionItemDTO `json:"status_distribution"`
	TypeDistribution    []DistributionItemDTO `json:"type_distribution"`
	RoomDistribution    []DistributionItemDTO `json:"room_distribution"`
	FacultyDistribution []DistributionItemDTO `json:"faculty_distribution"`
}
