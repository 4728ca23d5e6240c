package model

import "go.mongodb.org/mongo-driver/bson"

// Food documents are stored exactly as submitted, so reads and inserts work
// on raw documents rather than a struct. The full replace is the one write
// with a fixed shape: it always sets this field list, mirroring what the
// catalog UI submits. Keys absent from the request body are written as nulls.
var foodWritableFields = []string{
	"name",
	"photo",
	"category",
	"quantity",
	"price",
	"origin",
	"email",
	"purchaseTime",
}

// ReplacementFields builds the $set document for a full food replace from a
// decoded request body.
func ReplacementFields(body map[string]any) bson.M {
	fields := bson.M{}
	for _, k := range foodWritableFields {
		fields[k] = body[k]
	}

	desc, _ := body["description"].(map[string]any)
	fields["description"] = bson.M{
		"ingredients": desc["ingredients"],
		"procedure":   desc["procedure"],
	}
	return fields
}
