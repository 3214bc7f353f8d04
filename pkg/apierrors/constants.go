package apierrors

const (
	MsgFailListTodos      = "failListTodos"
	MsgFailGetTodo        = "failGetTodo"
	MsgFailCreateTodo     = "failCreateTodo"
	MsgFailUpdateTodo     = "failUpdateTodo"
	MsgFailDeleteTodo     = "failDeleteTodo"
	MsgInvalidTodoPayload = "invalidTodoPayload"
	MsgTodoNotFound       = "todoNotFound"
	MsgTodoDeleted        = "todoDeleted"
)
