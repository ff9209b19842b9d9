package dto

// CreateBookRequest payload for catalog registration.
type CreateBookRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// LoanBookRequest payload.
type LoanBookRequest struct {
	UserName string `json:"userName"`
	BookName string `json:"bookName"`
}

// ReturnBookRequest payload.
type ReturnBookRequest struct {
	UserName string `json:"userName"`
	BookName string `json:"bookName"`
}

// BookStatResponse is one row of the per-category statistics report.
type BookStatResponse struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
