package main

import (
	"errors"
	"net/http"

	"replygen/pkg/reply"

	"github.com/gin-gonic/gin"
)

func setupRoutes(r *gin.Engine) {
	r.GET("/templates", listTemplatesHandler)
	r.POST("/generate", generateHandler)
	r.GET("/help", helpHandler)
	r.GET("/release", releaseHandler)
}

func listTemplatesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": reply.Names()})
}

type generateRequest struct {
	Template     string `json:"template" binding:"required"`
	OrderNumber  string `json:"order_number"`
	PriceText    string `json:"price_text"`
	CalcText     string `json:"calc_text"`
	Done         string `json:"done"`
	Total        string `json:"total"`
	Payment1     string `json:"payment1"`
	Payment2     string `json:"payment2"`
	InflowAmount string `json:"inflow_amount"`
	InflowDate   string `json:"inflow_date"`
	InflowTime   string `json:"inflow_time"`
}

func generateHandler(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := reply.Generate(req.Template, reply.Input{
		OrderNumber:  req.OrderNumber,
		PriceText:    req.PriceText,
		CalcText:     req.CalcText,
		Done:         req.Done,
		Total:        req.Total,
		Payment1:     req.Payment1,
		Payment2:     req.Payment2,
		InflowAmount: req.InflowAmount,
		InflowDate:   req.InflowDate,
		InflowTime:   req.InflowTime,
	})
	if err != nil {
		var verr *reply.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
		case errors.Is(err, reply.ErrUnknownTemplate):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Произошла ошибка при обработке данных: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": out})
}
