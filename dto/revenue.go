package dto

// RevenueReportResponse là DTO cho báo cáo doanh thu theo khoảng thời gian
type RevenueReportResponse struct {
	Type     string              `json:"type"`
	FromDate string              `json:"fromDate"`
	ToDate   string              `json:"toDate"`
	Total    float64             `json:"total"`
	Buckets  []RevenueBucketItem `json:"buckets"`
}

// RevenueBucketItem là một khoảng thời gian trong báo cáo
type RevenueBucketItem struct {
	Period   string  `json:"period"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}
