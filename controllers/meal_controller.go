package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"caltrack/middlewares"
	"caltrack/services"
	"caltrack/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MealController struct {
	meals *services.MealService
	log   *zap.Logger
}

func NewMealController(meals *services.MealService, log *zap.Logger) *MealController {
	return &MealController{meals: meals, log: log}
}

func (mc *MealController) Create(c *gin.Context) {
	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.meals.Create(middlewares.UserID(c), input)
	if err != nil {
		mc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) List(c *gin.Context) {
	meals, err := mc.meals.List(middlewares.UserID(c))
	if err != nil {
		mc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) Get(c *gin.Context) {
	id, ok := mealID(c)
	if !ok {
		return
	}

	meal, err := mc.meals.Get(middlewares.UserID(c), id)
	if err != nil {
		mc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) Update(c *gin.Context) {
	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, ok := mealID(c)
	if !ok {
		return
	}

	meal, err := mc.meals.Update(middlewares.UserID(c), id, input)
	if err != nil {
		mc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) Delete(c *gin.Context) {
	id, ok := mealID(c)
	if !ok {
		return
	}

	if err := mc.meals.Delete(middlewares.UserID(c), id); err != nil {
		mc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal removed"})
}

// mealID parses the :id param. A malformed id reads as a meal that does
// not exist, same as an unknown one.
func mealID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return 0, false
	}
	return uint(id), true
}

// fail maps service errors to responses. Storage failures are logged
// server-side and surface as a generic 500.
func (mc *MealController) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
	case errors.Is(err, storage.ErrInvalidMeal):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		mc.log.Error("meal operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
