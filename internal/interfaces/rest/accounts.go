package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medeiros-dev/reseller-vault/internal/domain"
	"github.com/medeiros-dev/reseller-vault/internal/usecases/accounts"
	"github.com/medeiros-dev/reseller-vault/internal/usecases/slots"
	"github.com/medeiros-dev/reseller-vault/internal/usecases/stats"
)

func (s *Server) listAccounts(c *gin.Context) {
	ctx := c.Request.Context()

	accountList, err := s.accounts.List(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	customerList, err := s.customers.List(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAccountViews(accountList, customerList, time.Now()))
}

func (s *Server) getAccount(c *gin.Context) {
	ctx := c.Request.Context()

	account, err := s.accounts.Get(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	customerList, err := s.customers.List(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAccountView(account, customerList, time.Now()))
}

func (s *Server) createAccount(c *gin.Context) {
	var input accounts.CreateAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	account, err := s.accounts.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

func (s *Server) updateAccount(c *gin.Context) {
	var input accounts.UpdateAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	input.ID = c.Param("id")

	account, err := s.accounts.Update(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (s *Server) deleteAccount(c *gin.Context) {
	if err := s.accounts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type assignSlotRequest struct {
	CustomerID     string `json:"customer_id"`
	CustomerName   string `json:"customer_name"`
	ExpirationDate string `json:"expiration_date"`
	ProfileName    string `json:"profile_name"`
	Notes          string `json:"notes"`
}

func (s *Server) assignSlot(c *gin.Context) {
	var req assignSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	account, err := s.slots.Assign(c.Request.Context(), slots.AssignInput{
		AccountID:      c.Param("id"),
		SlotID:         c.Param("slotId"),
		CustomerID:     req.CustomerID,
		CustomerName:   req.CustomerName,
		ExpirationDate: req.ExpirationDate,
		ProfileName:    req.ProfileName,
		Notes:          req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (s *Server) clearSlot(c *gin.Context) {
	account, err := s.slots.Clear(c.Request.Context(), c.Param("id"), c.Param("slotId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (s *Server) getStats(c *gin.Context) {
	accountList, err := s.accounts.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats.Compute(accountList, time.Now()))
}

// serviceDefaults lets clients prefill the slot count when the user picks a
// service in the account form.
func (s *Server) serviceDefaults(c *gin.Context) {
	service := c.Query("service")
	c.JSON(http.StatusOK, gin.H{
		"service_name":  service,
		"default_slots": domain.DefaultSlotsFor(service),
	})
}
