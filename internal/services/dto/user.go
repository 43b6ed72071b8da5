package dto

// UserIDLookupRequest is the POST /users/id body. The email is deliberately
// not `required`: an absent email matches no user and reports 404, same as
// an unknown one.
type UserIDLookupRequest struct {
	Email string `json:"email"`
}

type UserIDResponse struct {
	UserID string `json:"userId"`
}
