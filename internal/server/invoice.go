package server

import (
	"fmt"
	"net/http"
	"strings"

	invoicedomain "github.com/aushadhi/pos/internal/invoice/domain"
	"github.com/aushadhi/pos/internal/invoice/render"
	"github.com/gin-gonic/gin"
)

// QuoteInvoice prices a draft without persisting anything.
func (s *Server) QuoteInvoice(c *gin.Context) {
	var req invoicedomain.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequestError(c, err)
		return
	}
	resp, err := s.invoices.Quote(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PickBatch folds one stock batch into the draft, deriving the rate
// from the batch's MRP and clamping the quantity to what is available.
func (s *Server) PickBatch(c *gin.Context) {
	var req invoicedomain.PickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequestError(c, err)
		return
	}
	resp, err := s.invoices.Pick(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SaveInvoice persists a sale and decrements stock.
func (s *Server) SaveInvoice(c *gin.Context) {
	var req invoicedomain.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequestError(c, err)
		return
	}
	resp, err := s.invoices.Save(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CreateReturn records a credit note against a saved sale.
func (s *Server) CreateReturn(c *gin.Context) {
	var req invoicedomain.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequestError(c, err)
		return
	}
	req.OriginalInvoiceID = c.Param("id")
	resp, err := s.invoices.CreateReturn(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (s *Server) ListInvoices(c *gin.Context) {
	var req invoicedomain.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		invalidRequestError(c, err)
		return
	}
	invoices, err := s.invoices.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (s *Server) GetInvoice(c *gin.Context) {
	invoice, err := s.invoices.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// RenderBill renders a saved invoice as a printable bill. The format
// query selects html (default) or pdf.
func (s *Server) RenderBill(c *gin.Context) {
	invoice, err := s.invoices.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	input := s.renderInputFor(invoice)

	switch strings.ToLower(c.DefaultQuery("format", "html")) {
	case "pdf":
		doc, err := s.pdf.RenderPDF(input)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s.pdf", input.Invoice.Number))
		c.Data(http.StatusOK, "application/pdf", doc)
	case "html":
		page, err := s.html.RenderHTML(input)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
	default:
		invalidRequestError(c, fmt.Errorf("unsupported format %q", c.Query("format")))
	}
}

func (s *Server) renderInputFor(invoice *invoicedomain.Invoice) render.RenderInput {
	input := render.RenderInput{
		Store: render.StoreView{
			Name:    s.cfg.Store.Name,
			Address: s.cfg.Store.Address,
			Phone:   s.cfg.Store.Phone,
			GSTIN:   s.cfg.Store.GSTIN,
			DLNo:    s.cfg.Store.DLNo,
		},
		Invoice: render.InvoiceView{
			Number:         invoicedomain.FormatNumber(invoice.Kind, invoice.InvoiceNo),
			Kind:           string(invoice.Kind),
			Date:           invoice.InvoiceDate,
			CustomerName:   invoice.CustomerName,
			CustomerPhone:  invoice.CustomerPhone,
			DoctorName:     invoice.DoctorName,
			PaymentMode:    invoice.PaymentMode,
			GrossAmount:    invoice.GrossAmount,
			CGSTAmount:     invoice.CGSTAmount,
			SGSTAmount:     invoice.SGSTAmount,
			Subtotal:       invoice.Subtotal,
			DiscountAmount: invoice.DiscountAmount,
			RoundOff:       invoice.RoundOff,
			FinalAmount:    invoice.FinalAmount,
			SavedFromMRP:   invoice.SavedFromMRP,
		},
	}
	for _, line := range invoice.Lines {
		input.Lines = append(input.Lines, render.LineView{
			ItemName:    line.ItemName,
			Batch:       line.Batch,
			Expiry:      line.Expiry,
			Pack:        line.Pack,
			Quantity:    line.Quantity,
			MRP:         line.MRP,
			Rate:        line.Rate,
			GSTPercent:  line.CGSTPercent + line.SGSTPercent,
			GrossAmount: line.GrossAmount,
			Total:       line.Total,
		})
	}
	return input
}
