// Package postman models the Postman output documents: Collection v2.1.0
// and Environment v2. The types carry only the fields this tool emits;
// they marshal to shapes the Postman app and API accept.
package postman

// SchemaV210 is the schema tag stamped into generated collections.
const SchemaV210 = "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"

// Collection represents a Postman Collection v2.1.0 document.
type Collection struct {
	Info  CollectionInfo `json:"info"`
	Items []*Item        `json:"item"`
}

// CollectionInfo is the collection's info block.
type CollectionInfo struct {
	PostmanID   string `json:"_postman_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Schema      string `json:"schema"`
}

// Item is a single request entry of a collection.
type Item struct {
	Name    string   `json:"name"`
	Request *Request `json:"request,omitempty"`
}

// Request describes the HTTP request of an item.
type Request struct {
	Method      string   `json:"method"`
	Header      []Header `json:"header,omitempty"`
	Body        *Body    `json:"body,omitempty"`
	URL         *URL     `json:"url"`
	Description string   `json:"description,omitempty"`
}

// Header is a single request header entry.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Body is a raw request body.
type Body struct {
	Mode    string       `json:"mode"`
	Raw     string       `json:"raw,omitempty"`
	Options *BodyOptions `json:"options,omitempty"`
}

// BodyModeRaw is the only body mode this tool generates.
const BodyModeRaw = "raw"

// BodyOptions carries per-mode rendering options.
type BodyOptions struct {
	Raw RawOptions `json:"raw"`
}

// RawOptions selects the language the Postman UI highlights raw bodies as.
type RawOptions struct {
	Language string `json:"language"`
}

// NewJSONBody builds a raw JSON body with json highlighting enabled.
func NewJSONBody(raw string) *Body {
	return &Body{
		Mode:    BodyModeRaw,
		Raw:     raw,
		Options: &BodyOptions{Raw: RawOptions{Language: "json"}},
	}
}

// URL is the structured request URL.
type URL struct {
	Raw       string       `json:"raw"`
	Host      []string     `json:"host,omitempty"`
	Path      []string     `json:"path,omitempty"`
	Query     []QueryParam `json:"query,omitempty"`
	Variables []Variable   `json:"variable,omitempty"`
}

// QueryParam is a single query string entry.
type QueryParam struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// Variable is a path variable entry of a URL.
type Variable struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}
