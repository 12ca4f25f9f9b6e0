package errors

import "net/http"

func invalidArgument(message string) *Exception {
	return &Exception{Message: message, StatusCode: http.StatusBadRequest}
}

var (
	ErrInvalidJSON         = invalidArgument("invalid JSON payload")
	ErrActivityIDRequired  = invalidArgument("activity id is required")
	ErrDescriptionRequired = invalidArgument("description is required")
	ErrTypeRequired        = invalidArgument("type is required")
	ErrInvalidType         = invalidArgument("unrecognized activity type")
	ErrStatusRequired      = invalidArgument("status is required")
	ErrInvalidStatus       = invalidArgument("unrecognized activity status")
	ErrDueDateRequired     = invalidArgument("dueDate is required")
	ErrInvalidDate         = invalidArgument("invalid date")
	ErrInvalidFilter       = invalidArgument("invalid filter")
	ErrChangedByRequired   = invalidArgument("changedById is required")
	ErrCreatedByRequired   = invalidArgument("createdById is required")
	ErrUnknownUser         = invalidArgument("referenced user does not exist")
	ErrUnknownProject      = invalidArgument("referenced project does not exist")
	ErrEmailRequired       = invalidArgument("email is required")
	ErrNameRequired        = invalidArgument("name is required")
	ErrPasswordRequired    = invalidArgument("password is required")
	ErrPasswordTooShort    = invalidArgument("password must be at least 6 characters")
	ErrPasswordTooLong     = invalidArgument("password must be at most 72 bytes")
	ErrEmailTaken          = invalidArgument("user with this email already exists")
	ErrProjectNameRequired = invalidArgument("project name is required")
)
