package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrSameStartGoal = New(
		"SAME_START_GOAL",
		"Start and goal points must differ",
		http.StatusBadRequest,
	)

	ErrInvalidPipeType = New(
		"INVALID_PIPE_TYPE",
		"Invalid pipe type, must be one of: oil, gas, water",
		http.StatusBadRequest,
	)

	ErrInvalidPipeMaterial = New(
		"INVALID_PIPE_MATERIAL",
		"Invalid pipe material, must be one of: steel, plastic, composite",
		http.StatusBadRequest,
	)

	ErrInvalidPipeDiameter = New(
		"INVALID_PIPE_DIAMETER",
		"Pipe diameter must be between 100 and 2000 mm",
		http.StatusBadRequest,
	)

	ErrInvalidPressure = New(
		"INVALID_PRESSURE",
		"Max pressure must be between 1 and 100 atm",
		http.StatusBadRequest,
	)

	ErrInvalidWeights = New(
		"INVALID_WEIGHTS",
		"Criteria weights must be non-negative",
		http.StatusBadRequest,
	)

	ErrPathNotFound = New(
		"PATH_NOT_FOUND",
		"No viable route found between the given points",
		http.StatusUnprocessableEntity,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
