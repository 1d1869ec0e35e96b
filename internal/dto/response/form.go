package response

// FormState is the visible state of an open booking form session: the draft
// as the client would render it plus the controller's lifecycle state. The
// total inside the draft is always the server-derived value.
type FormState struct {
	FormID   string `json:"form_id"`
	ItemType string `json:"item_type"`
	State    string `json:"state"`
	Draft    any    `json:"draft"`
}
