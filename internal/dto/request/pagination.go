package request

// CursorRequest asks for a page after the given cursor, which is the id of
// the last item of the previous page. The limit is clamped by the service.
type CursorRequest struct {
	Cursor *string `json:"cursor,omitempty" validate:"omitempty,uuid4"`
	Limit  int     `json:"limit" validate:"omitempty,min=1,max=50"`
}
