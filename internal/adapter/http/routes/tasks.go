package routes

import (
	"context"

	response "orderdesk/internal/adapter/http/dto/response"
	"orderdesk/internal/adapter/http/handlers"
	"orderdesk/internal/domain/entities"
	"orderdesk/internal/infrastructure/dispatch"
	"orderdesk/internal/usecase"
)

// registerTasks binds every queued task name to its use case call. Handlers
// return response DTOs so job polling exposes the same shape as the
// synchronous read endpoints.
func registerTasks(
	d *dispatch.Dispatcher,
	orders usecase.IOrderUseCase,
	quotations usecase.IQuotationUseCase,
	realisations usecase.IRealisationUseCase,
) {
	d.Register(handlers.TaskCreateOrder, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		order, err := orders.Create(ctx, stringArg(args, "customer_id"), entities.Service(stringArg(args, "service")), stringArg(args, "description"))
		if err != nil {
			return nil, err
		}
		return response.FromOrder(order), nil
	})
	d.Register(handlers.TaskCancelOrder, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		order, err := orders.Cancel(ctx, stringArg(args, "order_id"), stringArg(args, "author_id"), stringArg(args, "comment"))
		if err != nil {
			return nil, err
		}
		return response.FromOrder(order), nil
	})
	d.Register(handlers.TaskValidateOrder, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		order, err := orders.Validate(ctx, stringArg(args, "order_id"), stringArg(args, "author_id"), stringArg(args, "comment"))
		if err != nil {
			return nil, err
		}
		return response.FromOrder(order), nil
	})
	d.Register(handlers.TaskRejectOrder, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		order, err := orders.Reject(ctx, stringArg(args, "order_id"), stringArg(args, "author_id"), stringArg(args, "comment"))
		if err != nil {
			return nil, err
		}
		return response.FromOrder(order), nil
	})

	d.Register(handlers.TaskCreateQuotation, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		quotation, err := quotations.Create(ctx, intArg(args, "price"), stringArg(args, "order_id"), stringArg(args, "details"), stringArg(args, "owner_id"))
		if err != nil {
			return nil, err
		}
		return response.FromQuotation(quotation), nil
	})
	d.Register(handlers.TaskValidateQuotation, quotationAction(quotations.Validate))
	d.Register(handlers.TaskCancelQuotation, quotationAction(quotations.Cancel))
	d.Register(handlers.TaskAcceptQuotation, quotationAction(quotations.Accept))
	d.Register(handlers.TaskRejectQuotation, quotationAction(quotations.Reject))

	d.Register(handlers.TaskCreateRealisation, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		realisation, err := realisations.Create(ctx, stringArg(args, "order_id"), stringArg(args, "employee_id"), stringArg(args, "created_by"))
		if err != nil {
			return nil, err
		}
		return response.FromRealisation(realisation), nil
	})
	d.Register(handlers.TaskStartRealisation, realisationAction(realisations.Start))
	d.Register(handlers.TaskCompleteRealisation, realisationAction(realisations.Complete))
}

func quotationAction(call func(ctx context.Context, quotationID, authorID string) (entities.Quotation, error)) dispatch.HandlerFunc {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		quotation, err := call(ctx, stringArg(args, "quotation_id"), stringArg(args, "author_id"))
		if err != nil {
			return nil, err
		}
		return response.FromQuotation(quotation), nil
	}
}

func realisationAction(call func(ctx context.Context, realisationID, authorID string) (entities.Realisation, error)) dispatch.HandlerFunc {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		realisation, err := call(ctx, stringArg(args, "realisation_id"), stringArg(args, "author_id"))
		if err != nil {
			return nil, err
		}
		return response.FromRealisation(realisation), nil
	}
}

func stringArg(args map[string]interface{}, key string) string {
	v, _ := args[key].(string)
	return v
}

// intArg tolerates float64 because job args may round-trip through JSON.
func intArg(args map[string]interface{}, key string) int {
	switch v := args[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}
