package api

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dompet/dompet/internal/engine"
	"github.com/dompet/dompet/internal/ledger"
	"github.com/dompet/dompet/internal/model"
)

// filterFromQuery builds FilterOptions from the request query string.
// Absent parameters place no constraint; "all" sentinels are cleared
// by normalization downstream.
func filterFromQuery(c *gin.Context) model.FilterOptions {
	return model.FilterOptions{
		Type:       model.TransactionType(c.Query("type")),
		Category:   c.Query("category"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
		SearchTerm: c.Query("search"),
	}
}

// sortByDateDesc orders a view for presentation, newest date first
// with same-date entries kept together.
func sortByDateDesc(txns []model.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date > txns[j].Date
	})
}

func (s *Server) listTransactions(c *gin.Context) {
	txns := engine.ApplyFilter(s.store.List(), filterFromQuery(c), s.registry)
	sortByDateDesc(txns)
	c.JSON(http.StatusOK, txns)
}

func (s *Server) createTransaction(c *gin.Context) {
	var txn model.Transaction
	if err := c.ShouldBindJSON(&txn); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored, err := s.store.Add(c.Request.Context(), txn)
	if err != nil {
		status := http.StatusInternalServerError
		if isValidationError(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, stored)
}

func (s *Server) updateTransaction(c *gin.Context) {
	var txn model.Transaction
	if err := c.ShouldBindJSON(&txn); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	txn.ID = c.Param("id")

	stored, err := s.store.Update(c.Request.Context(), txn)
	if err != nil {
		status := http.StatusInternalServerError
		if isValidationError(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stored)
}

func (s *Server) deleteTransaction(c *gin.Context) {
	if err := s.store.Remove(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type categoryResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Type  string `json:"type"`
}

func (s *Server) listCategories(c *gin.Context) {
	var entries []ledger.CategoryEntry
	switch group := c.Query("group"); group {
	case "income":
		entries = s.registry.ListByGroup(model.TypeIncome)
	case "expense":
		entries = s.registry.ListByGroup(model.TypeExpense)
	case "":
		entries = s.registry.List()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "group must be income or expense"})
		return
	}

	out := make([]categoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, categoryResponse{
			Key:   e.Key,
			Label: e.Info.Label,
			Color: e.Info.Color,
			Icon:  e.Info.Icon,
			Type:  string(model.GroupForKey(e.Key)),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) upsertCategory(c *gin.Context) {
	var info model.CategoryInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.registry.Upsert(c.Request.Context(), c.Param("key"), info); err != nil {
		status := http.StatusInternalServerError
		if isValidationError(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"key":   c.Param("key"),
		"label": info.Label,
		"color": info.Color,
		"icon":  info.Icon,
	})
}

func (s *Server) summary(c *gin.Context) {
	txns := engine.ApplyFilter(s.store.List(), filterFromQuery(c), s.registry)
	c.JSON(http.StatusOK, gin.H{
		"totals":      engine.ComputeTotals(txns),
		"by_category": engine.ByCategory(txns),
	})
}

func (s *Server) summaryMonthly(c *gin.Context) {
	months := 6
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 120 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "months must be between 1 and 120"})
			return
		}
		months = parsed
	}

	txns := engine.ApplyFilter(s.store.List(), filterFromQuery(c), s.registry)
	buckets := engine.MonthlyBuckets(txns, time.Now().UTC(), months, s.registry)
	c.JSON(http.StatusOK, buckets)
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		model.ErrEmptyDescription,
		model.ErrInvalidAmount,
		model.ErrInvalidDate,
		model.ErrInvalidType,
		model.ErrEmptyCategory,
		model.ErrEmptyLabel,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
