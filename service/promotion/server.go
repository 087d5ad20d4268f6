package promotion

import (
	"net/http"
	"strconv"

	"github.com/QuangTung97/promo-delivery/model"
	"github.com/QuangTung97/promo-delivery/pkg/otellib"
	"github.com/QuangTung97/promo-delivery/repository"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// Server is the admin HTTP surface
type Server struct {
	provider      repository.Provider
	promotionRepo repository.Promotion
	customerRepo  repository.Customer

	deliverer IDeliverer
	runner    IRunner
	worker    IWorker

	drainBatchSize uint64
	opts           serviceOptions
}

// NewServer ...
func NewServer(
	provider repository.Provider,
	promotionRepo repository.Promotion,
	customerRepo repository.Customer,
	deliverer IDeliverer,
	runner IRunner,
	worker IWorker,
	drainBatchSize uint64,
	options ...Option,
) *Server {
	return &Server{
		provider:      provider,
		promotionRepo: promotionRepo,
		customerRepo:  customerRepo,

		deliverer: deliverer,
		runner:    runner,
		worker:    worker,

		drainBatchSize: drainBatchSize,
		opts:           newServiceOptions(options...),
	}
}

// Handler builds the gin engine with tracing and request logging
func (s *Server) Handler(serviceName string, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(serviceName))
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(otellib.ToContext(c.Request.Context(), logger))
		c.Next()
	})

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/triggers/run", s.runTriggers)
		v1.POST("/promotions/:id/deliveries", s.deliverPromotion)
		v1.POST("/pending-deliveries/drain", s.drainPendingDeliveries)
	}
	return router
}

type errorResponse struct {
	Error string `json:"error"`
}

type triggerResultResponse struct {
	TriggerID         int64    `json:"trigger_id"`
	TriggerName       string   `json:"trigger_name"`
	TriggerType       string   `json:"trigger_type"`
	Success           bool     `json:"success"`
	CustomersFound    int      `json:"customers_found"`
	PromotionsCreated int      `json:"promotions_created"`
	DeliveriesQueued  int      `json:"deliveries_queued"`
	PromotionID       int64    `json:"promotion_id,omitempty"`
	Errors            []string `json:"errors,omitempty"`
}

type runResponse struct {
	RunID                 string                  `json:"run_id"`
	Success               bool                    `json:"success"`
	Skipped               bool                    `json:"skipped"`
	TriggersProcessed     int                     `json:"triggers_processed"`
	TotalCustomersFound   int                     `json:"total_customers_found"`
	TotalDeliveriesQueued int                     `json:"total_deliveries_queued"`
	Results               []triggerResultResponse `json:"results"`
	Errors                []string                `json:"errors,omitempty"`
}

func (s *Server) runTriggers(c *gin.Context) {
	result := s.runner.RunAll(c.Request.Context())

	resp := runResponse{
		RunID:                 result.RunID,
		Success:               result.Success,
		Skipped:               result.Skipped,
		TriggersProcessed:     result.TriggersProcessed,
		TotalCustomersFound:   result.TotalCustomersFound,
		TotalDeliveriesQueued: result.TotalDeliveriesQueued,
		Results:               make([]triggerResultResponse, 0, len(result.Results)),
		Errors:                result.Errors,
	}
	for _, r := range result.Results {
		resp.Results = append(resp.Results, triggerResultResponse{
			TriggerID:         r.TriggerID,
			TriggerName:       r.TriggerName,
			TriggerType:       string(r.TriggerType),
			Success:           r.Success,
			CustomersFound:    r.CustomersFound,
			PromotionsCreated: r.PromotionsCreated,
			DeliveriesQueued:  r.DeliveriesQueued,
			PromotionID:       r.PromotionID,
			Errors:            r.Errors,
		})
	}
	c.JSON(http.StatusOK, resp)
}

type deliverRequest struct {
	CustomerID string                  `json:"customer_id" binding:"required"`
	Channels   []model.DeliveryChannel `json:"channels" binding:"required,min=1"`
}

type channelResultResponse struct {
	Channel          string `json:"channel"`
	Success          bool   `json:"success"`
	ClaimCode        string `json:"claim_code,omitempty"`
	AlreadyDelivered bool   `json:"already_delivered"`
	Error            string `json:"error,omitempty"`
}

type deliverResponse struct {
	PromotionID int64                   `json:"promotion_id"`
	CustomerID  string                  `json:"customer_id"`
	Results     []channelResultResponse `json:"results"`
}

func (s *Server) deliverPromotion(c *gin.Context) {
	promotionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid promotion id"})
		return
	}

	var req deliverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	readCtx := s.provider.Readonly(ctx)

	nullPromo, err := s.promotionRepo.GetPromotion(readCtx, promotionID)
	if err != nil {
		otellib.Extract(ctx).Error("get promotion", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	if !nullPromo.Valid {
		c.JSON(http.StatusNotFound, errorResponse{Error: "promotion not found"})
		return
	}
	if !nullPromo.Promotion.IsValidAt(s.opts.now()) {
		c.JSON(http.StatusConflict, errorResponse{Error: "promotion is not valid"})
		return
	}

	nullCustomer, err := s.customerRepo.GetCustomer(readCtx, req.CustomerID)
	if err != nil {
		otellib.Extract(ctx).Error("get customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	if !nullCustomer.Valid {
		c.JSON(http.StatusNotFound, errorResponse{Error: "customer not found"})
		return
	}

	results := s.deliverer.Deliver(ctx,
		NewPromotionData(nullPromo.Promotion),
		NewCustomerData(nullCustomer.Customer),
		req.Channels,
	)

	resp := deliverResponse{
		PromotionID: promotionID,
		CustomerID:  req.CustomerID,
		Results:     make([]channelResultResponse, 0, len(results)),
	}
	for _, r := range results {
		resp.Results = append(resp.Results, channelResultResponse{
			Channel:          string(r.Channel),
			Success:          r.Success,
			ClaimCode:        r.ClaimCode,
			AlreadyDelivered: r.AlreadyDelivered,
			Error:            r.Error,
		})
	}
	c.JSON(http.StatusOK, resp)
}

type drainRequest struct {
	HashBegin uint32  `json:"hash_begin"`
	HashEnd   *uint32 `json:"hash_end"`
	Limit     uint64  `json:"limit"`
}

type drainResponse struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
	Retried   int `json:"retried"`
}

func (s *Server) drainPendingDeliveries(c *gin.Context) {
	var req drainRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
	}

	hashRange := repository.HashRange{Begin: req.HashBegin}
	if req.HashEnd != nil {
		hashRange.End = repository.NullUint32{Valid: true, Num: *req.HashEnd}
	}

	limit := req.Limit
	if limit == 0 {
		limit = s.drainBatchSize
	}

	ctx := c.Request.Context()
	result, err := s.worker.Drain(ctx, hashRange, limit)
	if err != nil {
		otellib.Extract(ctx).Error("drain pending deliveries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, drainResponse{
		Processed: result.Processed,
		Sent:      result.Sent,
		Failed:    result.Failed,
		Skipped:   result.Skipped,
		Retried:   result.Retried,
	})
}
