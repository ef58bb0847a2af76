package models

// UserProfile is the stored profile of an application user. The account
// itself (credentials, tokens) lives in the external identity service;
// only the profile is persisted here, keyed by the identity uid.
type UserProfile struct {
	UID         string `bson:"_id,omitempty" json:"uid"`
	FirstName   string `bson:"firstName" json:"firstName"`
	LastName    string `bson:"lastName" json:"lastName"`
	FullName    string `bson:"fullName" json:"fullName"`
	Username    string `bson:"username" json:"username"`
	Role        string `bson:"role" json:"role"`
	Status      string `bson:"status" json:"status"`
	DateCreated int64  `bson:"dateCreated" json:"dateCreated"`
}

// PersonnelRecord captures a farm worker entry managed from the admin
// dashboard.
type PersonnelRecord struct {
	ID            string  `bson:"_id,omitempty" json:"id"`
	FullName      string  `bson:"fullName" json:"fullName"`
	Position      string  `bson:"position" json:"position"`
	ContactNumber string  `bson:"contactNumber" json:"contactNumber"`
	Address       string  `bson:"address" json:"address"`
	DailyRate     float64 `bson:"dailyRate" json:"dailyRate"`
	DateHired     string  `bson:"dateHired" json:"dateHired"`
}
