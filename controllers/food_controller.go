package controllers

import (
	"net/http"
	"strconv"

	"github.com/hazalkoom/Food-Tracker/middlewares"
	"github.com/hazalkoom/Food-Tracker/services"

	"github.com/gin-gonic/gin"
)

var foodSvc = services.NewFoodService(services.NewOpenFoodFactsService(), services.NewTTLCache())

// GET /api/foodtracker/search?query=apple
func SearchFoods(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"query": "This field is required."})
		return
	}

	results := foodSvc.Search(middlewares.UserID(c), query)
	c.JSON(http.StatusOK, results)
}

func CreateFoodItem(c *gin.Context) {
	var input services.FoodItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := foodSvc.CreateItem(middlewares.UserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

type ImportInput struct {
	Code string `json:"code" binding:"required"`
}

// POST /api/foodtracker/items/import — pull a product in by its external
// database code.
func ImportFoodItem(c *gin.Context) {
	var input ImportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := foodSvc.ImportItem(input.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func ListFoodItems(c *gin.Context) {
	items, err := foodSvc.ListItems()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func GetFoodItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	item, err := foodSvc.GetItem(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func DeleteFoodItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"id": "Invalid food item id."})
		return
	}

	if err := foodSvc.DeleteItem(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
