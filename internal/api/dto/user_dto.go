package dto

// UserCreateRequest payload for new members.
type UserCreateRequest struct {
	Name string `json:"name"`
	Age  *int32 `json:"age"`
}

// UserUpdateRequest payload for renaming a member.
type UserUpdateRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserResponse renders a member.
type UserResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  *int32 `json:"age"`
}

// UserHistoryResponse renders one member's loan history.
type UserHistoryResponse struct {
	Name  string                `json:"name"`
	Books []BookHistoryResponse `json:"books"`
}

// BookHistoryResponse renders one ledger entry.
type BookHistoryResponse struct {
	Name     string `json:"name"`
	IsReturn bool   `json:"isReturn"`
}
