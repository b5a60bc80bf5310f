package entities

// Entity is the marker constraint shared by domain structs and the generic
// message mappers. Embed it with a `json:"-"` tag in types that are encoded.
type Entity interface{}
