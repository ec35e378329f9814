// models/user.go
package models

// User is the subset of a customer account this service reads.
type User struct {
	ID          string   `bson:"id" json:"id"`
	Username    string   `bson:"username" json:"username"`
	Email       string   `bson:"email" json:"email"`
	FCMToken    string   `bson:"fcm_token,omitempty" json:"-"`
	Preferences []string `bson:"preferences,omitempty" json:"preferences,omitempty"`
}

// UserExistence is the answer to an account lookup.
type UserExistence struct {
	UsernameExists bool `json:"usernameExists"`
	EmailExists    bool `json:"emailExists"`
}
