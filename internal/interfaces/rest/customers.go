package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medeiros-dev/reseller-vault/internal/usecases/customers"
)

func (s *Server) listCustomers(c *gin.Context) {
	customerList, err := s.customers.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerList)
}

func (s *Server) createCustomer(c *gin.Context) {
	var input customers.CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	customer, err := s.customers.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// deleteCustomer removes the record only. Slots keep their customer_id and
// cached customer_name; display falls back to the cache from then on.
func (s *Server) deleteCustomer(c *gin.Context) {
	if err := s.customers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
