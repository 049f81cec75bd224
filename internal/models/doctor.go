package models

import "go.mongodb.org/mongo-driver/bson"

// Doctor is the document written by the doctor upload form.
type Doctor struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Image []byte `bson:"image" json:"image"`
}

// Document is the full document inserted for a new doctor.
func (d Doctor) Document() bson.M {
	return bson.M{"name": d.Name, "email": d.Email, "image": d.Image}
}

// Fields returns the non-empty fields as a $set document.
func (d Doctor) Fields() bson.M {
	set := bson.M{}
	if d.Name != "" {
		set["name"] = d.Name
	}
	if d.Email != "" {
		set["email"] = d.Email
	}
	if len(d.Image) > 0 {
		set["image"] = d.Image
	}
	return set
}
