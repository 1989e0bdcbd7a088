package apierrors

const (
	MsgUnauthorized = "unauthorized"

	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailCompleteTask   = "failCompleteTask"

	MsgInvalidListID      = "invalidListID"
	MsgInvalidListPayload = "invalidListPayload"
	MsgListNotFound       = "listNotFound"
	MsgDuplicateListName  = "duplicateListName"
	MsgFailListLists      = "failListLists"
	MsgFailCreateList     = "failCreateList"
	MsgFailUpdateList     = "failUpdateList"
	MsgFailDeleteList     = "failDeleteList"

	MsgInvalidCategoryID      = "invalidCategoryID"
	MsgInvalidCategoryPayload = "invalidCategoryPayload"
	MsgCategoryNotFound       = "categoryNotFound"
	MsgDuplicateCategoryName  = "duplicateCategoryName"
	MsgFailListCategories     = "failListCategories"
	MsgFailCreateCategory     = "failCreateCategory"
	MsgFailUpdateCategory     = "failUpdateCategory"
	MsgFailDeleteCategory     = "failDeleteCategory"

	MsgInvalidSignupPayload = "invalidSignupPayload"
	MsgUsernameTaken        = "usernameTaken"
	MsgInvalidCredentials   = "invalidCredentials"
	MsgFailSignup           = "failSignup"
	MsgFailLogin            = "failLogin"
)
