// Package http exposes the shipping engine over a REST API built on Echo.
// Handlers translate wire payloads into commands and queries and map the
// application error taxonomy onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/method"
	"shipping/internal/core/domain/model/zone"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createZoneHandler   commands.CreateZoneCommandHandler
	createMethodHandler commands.CreateMethodCommandHandler

	// Query handlers
	calculateShippingHandler queries.CalculateShippingQueryHandler
	listZonesHandler         queries.ListZonesQueryHandler
	listMethodsHandler       queries.ListMethodsQueryHandler
	trackShipmentHandler     queries.TrackShipmentQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createZoneHandler commands.CreateZoneCommandHandler,
	createMethodHandler commands.CreateMethodCommandHandler,
	calculateShippingHandler queries.CalculateShippingQueryHandler,
	listZonesHandler queries.ListZonesQueryHandler,
	listMethodsHandler queries.ListMethodsQueryHandler,
	trackShipmentHandler queries.TrackShipmentQueryHandler,
) *Server {
	return &Server{
		createZoneHandler:        createZoneHandler,
		createMethodHandler:      createMethodHandler,
		calculateShippingHandler: calculateShippingHandler,
		listZonesHandler:         listZonesHandler,
		listMethodsHandler:       listMethodsHandler,
		trackShipmentHandler:     trackShipmentHandler,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/shipping/calculate", s.CalculateShipping)
	api.GET("/zones", s.GetZones)
	api.POST("/zones", s.CreateZone)
	api.GET("/methods", s.GetMethods)
	api.POST("/methods", s.CreateMethod)
	api.GET("/tracking/:trackingNumber", s.TrackShipment)
}

// CalculateShipping handles POST /api/v1/shipping/calculate - prices the
// available shipping options for a destination and item set.
func (s *Server) CalculateShipping(ctx echo.Context) error {
	var request CalculateShippingRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	destination, err := request.Destination.toDomain()
	if err != nil {
		return badRequest(ctx, "Invalid destination: "+err.Error())
	}

	store, err := ownerFromStoreID(request.StoreID)
	if err != nil {
		return badRequest(ctx, "Invalid store ID: "+err.Error())
	}

	items := make([]queries.ItemQuantity, 0, len(request.Items))
	for _, item := range request.Items {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return badRequest(ctx, "Invalid product ID: "+item.ProductID)
		}
		items = append(items, queries.ItemQuantity{ProductID: productID, Quantity: item.Quantity})
	}

	query, err := queries.NewCalculateShippingQuery(destination, items, store)
	if err != nil {
		return badRequest(ctx, "Invalid calculation request: "+err.Error())
	}

	result, err := s.calculateShippingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapApplicationError(ctx, err)
	}

	options := make([]ShippingOptionResponse, 0, len(result.Options))
	for _, option := range result.Options {
		options = append(options, ShippingOptionResponse{
			ZoneID:         option.ZoneID.String(),
			ZoneName:       option.ZoneName,
			MethodID:       option.MethodID.String(),
			MethodCode:     option.MethodCode,
			MethodName:     option.MethodName,
			Description:    option.Description,
			CarrierName:    option.CarrierName,
			CarrierService: option.CarrierService,
			Features:       option.Features,
			RateType:       option.RateType,
			Cost:           option.Cost,
			Estimate: EstimateResponse{
				MinDays: option.Estimate.MinDays(),
				MaxDays: option.Estimate.MaxDays(),
			},
		})
	}

	return ctx.JSON(http.StatusOK, CalculateShippingResponse{
		Options: options,
		Package: PackageResponse{
			TotalWeight:       result.Package.TotalWeight,
			BillableWeight:    result.Package.BillableWeight,
			DimensionalWeight: result.Package.DimensionalWeight,
			TotalValue:        result.Package.TotalValue,
			TotalItems:        result.Package.TotalItems,
			Length:            result.Package.Length,
			Width:             result.Package.Width,
			Height:            result.Package.Height,
		},
	})
}

// GetZones handles GET /api/v1/zones - lists the zones visible to a store.
func (s *Server) GetZones(ctx echo.Context) error {
	storeID := ctx.QueryParam("store_id")
	var storeIDPtr *string
	if storeID != "" {
		storeIDPtr = &storeID
	}

	store, err := ownerFromStoreID(storeIDPtr)
	if err != nil {
		return badRequest(ctx, "Invalid store ID: "+err.Error())
	}

	zones, err := s.listZonesHandler.Handle(ctx.Request().Context(), queries.NewListZonesQuery(store))
	if err != nil {
		return mapApplicationError(ctx, err)
	}

	response := make([]ZoneResponse, 0, len(zones))
	for _, z := range zones {
		response = append(response, zoneResponseFrom(z))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateZone handles POST /api/v1/zones - creates a new shipping zone.
func (s *Server) CreateZone(ctx echo.Context) error {
	var request CreateZoneRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	owner, err := ownerFromStoreID(request.StoreID)
	if err != nil {
		return badRequest(ctx, "Invalid store ID: "+err.Error())
	}

	countries := make([]zone.CountryCoverage, 0, len(request.Countries))
	for _, coverageRequest := range request.Countries {
		coverage, coverageErr := coverageRequest.toDomain()
		if coverageErr != nil {
			return badRequest(ctx, "Invalid coverage: "+coverageErr.Error())
		}
		countries = append(countries, coverage)
	}

	links := make([]zone.MethodLink, 0, len(request.Methods))
	for _, linkRequest := range request.Methods {
		methodID, idErr := kernel.UUIDFromString(linkRequest.MethodID)
		if idErr != nil {
			return badRequest(ctx, "Invalid method ID: "+linkRequest.MethodID)
		}

		var customRates method.RateCalculation
		if linkRequest.CustomRates != nil {
			customRates, err = linkRequest.CustomRates.toDomain()
			if err != nil {
				return badRequest(ctx, "Invalid custom rates: "+err.Error())
			}
		}

		link, linkErr := zone.NewMethodLink(methodID, customRates)
		if linkErr != nil {
			return badRequest(ctx, "Invalid method link: "+linkErr.Error())
		}
		links = append(links, link)
	}

	cmd, err := commands.NewCreateZoneCommand(owner, request.Name, request.Description, countries, links)
	if err != nil {
		return badRequest(ctx, "Invalid zone data: "+err.Error())
	}

	if err = s.createZoneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapApplicationError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateZoneResponse{ID: cmd.ZoneID().String()})
}

// GetMethods handles GET /api/v1/methods - lists the methods visible to a store.
func (s *Server) GetMethods(ctx echo.Context) error {
	storeID := ctx.QueryParam("store_id")
	var storeIDPtr *string
	if storeID != "" {
		storeIDPtr = &storeID
	}

	store, err := ownerFromStoreID(storeIDPtr)
	if err != nil {
		return badRequest(ctx, "Invalid store ID: "+err.Error())
	}

	methods, err := s.listMethodsHandler.Handle(ctx.Request().Context(), queries.NewListMethodsQuery(store))
	if err != nil {
		return mapApplicationError(ctx, err)
	}

	response := make([]MethodResponse, 0, len(methods))
	for _, m := range methods {
		response = append(response, methodResponseFrom(m))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMethod handles POST /api/v1/methods - creates a new shipping method.
func (s *Server) CreateMethod(ctx echo.Context) error {
	var request CreateMethodRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	owner, err := ownerFromStoreID(request.StoreID)
	if err != nil {
		return badRequest(ctx, "Invalid store ID: "+err.Error())
	}

	rateCalculation, err := request.RateCalculation.toDomain()
	if err != nil {
		return badRequest(ctx, "Invalid rate calculation: "+err.Error())
	}

	cmd, err := commands.NewCreateMethodCommand(
		owner, request.Code, request.Name, request.Description, rateCalculation,
	)
	if err != nil {
		return badRequest(ctx, "Invalid method data: "+err.Error())
	}

	if request.CarrierName != "" || request.CarrierService != "" {
		cmd = cmd.WithCarrier(request.CarrierName, request.CarrierService)
	}
	if len(request.Features) > 0 {
		cmd = cmd.WithFeatures(request.Features)
	}
	if request.MinCost != nil || request.MaxCost != nil {
		bounds, boundsErr := method.NewCostBounds(request.MinCost, request.MaxCost)
		if boundsErr != nil {
			return badRequest(ctx, "Invalid cost bounds: "+boundsErr.Error())
		}
		cmd = cmd.WithCostBounds(bounds)
	}
	if request.EstimateMinDays != nil && request.EstimateMaxDays != nil {
		estimate, estimateErr := method.NewDeliveryEstimate(*request.EstimateMinDays, *request.EstimateMaxDays)
		if estimateErr != nil {
			return badRequest(ctx, "Invalid delivery estimate: "+estimateErr.Error())
		}
		cmd = cmd.WithEstimate(estimate)
	}
	if len(request.ExcludedCountries) > 0 || request.MaxWeight != nil || len(request.ProhibitedProducts) > 0 {
		prohibited := make([]kernel.UUID, 0, len(request.ProhibitedProducts))
		for _, raw := range request.ProhibitedProducts {
			productID, idErr := kernel.UUIDFromString(raw)
			if idErr != nil {
				return badRequest(ctx, "Invalid prohibited product ID: "+raw)
			}
			prohibited = append(prohibited, productID)
		}

		restrictions, restrictionsErr := method.NewRestrictions(
			request.ExcludedCountries, request.MaxWeight, prohibited,
		)
		if restrictionsErr != nil {
			return badRequest(ctx, "Invalid restrictions: "+restrictionsErr.Error())
		}
		cmd = cmd.WithRestrictions(restrictions)
	}

	if err = s.createMethodHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapApplicationError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateMethodResponse{ID: cmd.MethodID().String()})
}

// TrackShipment handles GET /api/v1/tracking/:trackingNumber - queries the
// carrier for the shipment's transit status. The carrier name comes from the
// optional "carrier" query parameter.
func (s *Server) TrackShipment(ctx echo.Context) error {
	query, err := queries.NewTrackShipmentQuery(
		ctx.QueryParam("carrier"),
		ctx.Param("trackingNumber"),
	)
	if err != nil {
		return badRequest(ctx, "Invalid tracking request: "+err.Error())
	}

	info, err := s.trackShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapApplicationError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackingResponseFrom(info))
}

// badRequest writes a 400 response with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapApplicationError translates application errors onto HTTP status codes.
// Validation errors become 400, missing objects 404, violated uniqueness
// invariants 409, and everything else 500.
func mapApplicationError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, services.ErrNoCoverage):
		status = http.StatusBadRequest
		message = "No shipping available to this address"
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, commands.ErrZoneOverlaps),
		errors.Is(err, commands.ErrMethodCodeTaken):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}
