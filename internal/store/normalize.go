package store

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Normalize rewrites driver-specific values into types that encode to
// plain JSON: ids become hex strings, binaries become byte slices (base64
// in JSON) and ordered documents become maps.
func Normalize(doc bson.M) bson.M {
	if doc == nil {
		return nil
	}
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.ObjectID:
		return val.Hex()
	case primitive.Binary:
		return val.Data
	case primitive.DateTime:
		return val.Time().UTC()
	case bson.M:
		return Normalize(val)
	case map[string]interface{}:
		return Normalize(bson.M(val))
	case primitive.D:
		return Normalize(val.Map())
	case primitive.A:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	case []interface{}:
		return normalizeValue(primitive.A(val))
	default:
		return v
	}
}
