package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"jobport.backend/internal/interfaces/http/handlers"
	"jobport.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	orderHandler   *handlers.OrderHandler
	paymentHandler *handlers.PaymentHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Order routes (protected, purchases require a confirmed email)
		orders := v1.Group("/orders")
		orders.Use(d.authMiddleware)
		{
			confirmed := orders.Group("")
			confirmed.Use(middleware.RequireEmailConfirmed(), middleware.IdempotencyMiddleware())
			{
				confirmed.POST("/top-up", d.orderHandler.CreateTopUpOrder)
				confirmed.POST("/job", d.orderHandler.CreateJobOrder)
				confirmed.POST("/business", d.orderHandler.CreateBusinessOrder)
			}

			orders.GET("", d.orderHandler.ListOrders)
			orders.GET("/:id", d.orderHandler.GetOrder)
		}

		payments := v1.Group("/payments")
		{
			// Payment request routes (protected)
			payments.POST("/vn-pay/create-payment-url", d.authMiddleware, d.paymentHandler.CreateVNPayPaymentURL)
			payments.POST("/se-pay/create-payment-qr", d.authMiddleware, d.paymentHandler.CreateSePayPaymentQR)
			payments.GET("/:id", d.authMiddleware, d.paymentHandler.GetPayment)

			// Gateway callback routes (public; authenticity is checked by
			// signature or API key, not by a user session)
			payments.GET("/vn-pay/call-back", d.paymentHandler.VNPayCallback)
			payments.POST("/se-pay/webhook", d.paymentHandler.SePayWebhook)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID, Idempotency-Key")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "jobport-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
