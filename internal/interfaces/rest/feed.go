package rest

import (
	"io"

	"github.com/gin-gonic/gin"
)

// feed streams store snapshots as server-sent events. Each accounts or
// customers write produces one event carrying the full collection, which is
// exactly how the dashboard keeps itself current without polling.
func (s *Server) feed(c *gin.Context) {
	ctx := c.Request.Context()

	accountEvents, cancelAccounts := s.store.WatchAccounts(ctx)
	defer cancelAccounts()
	customerEvents, cancelCustomers := s.store.WatchCustomers(ctx)
	defer cancelCustomers()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-accountEvents:
			if !ok {
				return false
			}
			if ev.Err != nil {
				c.SSEvent("error", gin.H{"error": ev.Err.Error()})
				return true
			}
			c.SSEvent("accounts", ev.Accounts)
			return true
		case ev, ok := <-customerEvents:
			if !ok {
				return false
			}
			if ev.Err != nil {
				c.SSEvent("error", gin.H{"error": ev.Err.Error()})
				return true
			}
			c.SSEvent("customers", ev.Customers)
			return true
		}
	})
}
