package controllers

import (
	"net/http"
	"strconv"

	"github.com/hazalkoom/Food-Tracker/middlewares"
	"github.com/hazalkoom/Food-Tracker/services"

	"github.com/gin-gonic/gin"
)

var logSvc = services.NewFoodLogService(services.NewTTLCache())

func CreateLogEntry(c *gin.Context) {
	var input services.LogEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := logSvc.Create(middlewares.UserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /api/foodtracker/logs?date=2024-05-01
func ListLogEntries(c *gin.Context) {
	entries, err := logSvc.List(middlewares.UserID(c), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func entryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return 0, false
	}
	return uint(id), true
}

func GetLogEntry(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}

	entry, err := logSvc.Get(middlewares.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func UpdateLogEntry(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}

	var input services.LogEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := logSvc.Update(middlewares.UserID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func DeleteLogEntry(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}

	if err := logSvc.Delete(middlewares.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/foodtracker/summary?date=2024-05-01 (default: today)
func DailySummary(c *gin.Context) {
	summary, err := logSvc.Summarize(middlewares.UserID(c), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
