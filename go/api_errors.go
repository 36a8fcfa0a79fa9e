package storefrontserver

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	cartapp "github.com/Apurer/delish-express/internal/domains/cart/application"
	catalogapp "github.com/Apurer/delish-express/internal/domains/catalog/application"
	catalogports "github.com/Apurer/delish-express/internal/domains/catalog/ports"
	checkoutapp "github.com/Apurer/delish-express/internal/domains/checkout/application"
	checkoutdomain "github.com/Apurer/delish-express/internal/domains/checkout/domain"
	ordersapp "github.com/Apurer/delish-express/internal/domains/orders/application"
	ordersports "github.com/Apurer/delish-express/internal/domains/orders/ports"
	apierrors "github.com/Apurer/delish-express/internal/shared/errors"
)

// problems maps the storefront's domain errors onto RFC 7807 responses.
var problems = apierrors.NewChainedResponder("",
	mapValidationError,
	mapNotFound,
	mapInvalidInput,
	mapEmptyCart,
)

// problemFor resolves err the same way problems does, for handlers that
// render HTML instead of problem+json.
func problemFor(err error) apierrors.ProblemDetail {
	if problem, ok := problems.Resolve(err); ok {
		return problem
	}
	return apierrors.ErrInternal.WithDetail(err.Error())
}

func mapValidationError(err error) (apierrors.ProblemDetail, bool) {
	var validation *checkoutdomain.ValidationError
	if errors.As(err, &validation) {
		return apierrors.NewValidationProblem(validation.Fields), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapNotFound(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, catalogports.ErrNotFound),
		errors.Is(err, cartapp.ErrItemNotFound),
		errors.Is(err, cartapp.ErrLineNotFound),
		errors.Is(err, ordersports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapInvalidInput(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, errBadForm),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, cartapp.ErrInvalidInput),
		errors.Is(err, ordersapp.ErrInvalidInput):
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapEmptyCart(err error) (apierrors.ProblemDetail, bool) {
	if errors.Is(err, checkoutapp.ErrEmptyCart) {
		return apierrors.ErrUnprocessable.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func respondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	problems.RespondError(c, err)
}

func respondBadRequest(c *gin.Context, err error) {
	problems.BadRequest(c, err.Error())
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		problems.BadRequest(c, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}
