package handlers

import (
	"github.com/gin-gonic/gin"

	"healio-server/internal/doctors"
	"healio-server/internal/utils"
)

// GetDoctors serves the static physician directory.
func GetDoctors(c *gin.Context) {
	utils.Success(c, "Doctors fetched successfully", doctors.Directory)
}
