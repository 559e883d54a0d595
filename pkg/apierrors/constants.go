package apierrors

const (
	MsgUserNotFound       = "userNotFound"
	MsgTaskNotFound       = "taskNotFound"
	MsgInvalidCredentials = "invalidCredentials"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgNotAuthenticated   = "notAuthenticated"
	MsgInvalidToken       = "invalidToken"
	MsgFailRegisterUser   = "failRegisterUser"
	MsgFailLogin          = "failLogin"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailGetTask        = "failGetTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailAssignTask     = "failAssignTask"
	MsgFailListUserTasks  = "failListUserTasks"
	MsgFailAuthenticate   = "failAuthenticate"
)

// NonFieldErrors is the field key used for violations that belong to the payload as a whole.
const NonFieldErrors = "non_field_errors"
