package domain

// Prompt is a yes/no question put to the user before a command proceeds.
type Prompt struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// StartPrompt gates the start of route tracking.
var StartPrompt = Prompt{
	Title:   "Start route tracking",
	Message: "Are you sure you want to start route tracking?",
}

// NoticeKind identifies a user-facing notice.
type NoticeKind string

const (
	NoticePermissionDenied NoticeKind = "PERMISSION_DENIED"
	NoticeRouteSaved       NoticeKind = "ROUTE_SAVED"
)

// Notice is a one-time message surfaced to the user.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Title   string     `json:"title"`
	Message string     `json:"message"`
}

// PermissionDeniedNotice is shown when location access is refused.
var PermissionDeniedNotice = Notice{
	Kind:    NoticePermissionDenied,
	Title:   "Permission denied",
	Message: "Permission to access location is required.",
}

// RouteSavedNotice is shown after a route has been handed to the save destination.
var RouteSavedNotice = Notice{
	Kind:    NoticeRouteSaved,
	Title:   "Route saved!",
	Message: "Your route has been saved.",
}
