package handlers

// Task names under which write operations are queued. Handlers submit these;
// the route wiring binds each one to the matching use case call.
const (
	TaskCreateOrder   = "tasks.create_order"
	TaskCancelOrder   = "tasks.cancel_order"
	TaskValidateOrder = "tasks.validate_order"
	TaskRejectOrder   = "tasks.reject_order"

	TaskCreateQuotation   = "tasks.create_quotation"
	TaskValidateQuotation = "tasks.validate_quotation"
	TaskCancelQuotation   = "tasks.cancel_quotation"
	TaskAcceptQuotation   = "tasks.accept_quotation"
	TaskRejectQuotation   = "tasks.reject_quotation"

	TaskCreateRealisation   = "tasks.create_realisation"
	TaskStartRealisation    = "tasks.start_realisation"
	TaskCompleteRealisation = "tasks.complete_realisation"
)

// JobSubmitter queues a task invocation and returns the job id the client
// polls for the outcome.
type JobSubmitter interface {
	Submit(task string, args map[string]interface{}) (string, error)
}
