package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zulandar/hwrel/internal/bom"
	"github.com/zulandar/hwrel/internal/hardware"
	"github.com/zulandar/hwrel/internal/milhdbk217f"
	"github.com/zulandar/hwrel/internal/models"
	"go.uber.org/zap"
)

// registerRoutes sets up all API routes on the Gin router.
func registerRoutes(router *gin.Engine, s *Server) {
	router.GET("/healthz", handleHealth())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.GET("/hardware/:id", s.handleHardware())
	api.GET("/hardware/:id/tree", s.handleTree())
	api.POST("/hardware/:id/calculate", s.handleCalculate())
	api.POST("/predict", s.handlePredict())
}

// hardwareView is the JSON form of a hardware row.
type hardwareView struct {
	ID            uint    `json:"id"`
	ParentID      *uint   `json:"parent_id"`
	Part          bool    `json:"part"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	PartNumber    string  `json:"part_number,omitempty"`
	RefDes        string  `json:"ref_des"`
	CompRefDes    string  `json:"comp_ref_des"`
	CategoryID    int     `json:"category_id"`
	SubcategoryID int     `json:"subcategory_id"`
	Quantity      int     `json:"quantity"`
	DutyCycle     float64 `json:"duty_cycle"`
	MissionTime   float64 `json:"mission_time"`
	Cost          float64 `json:"cost"`

	HazardRateActive float64 `json:"hazard_rate_active"`
	Overstress       bool    `json:"overstress"`
}

func viewOf(hw models.Hardware) hardwareView {
	v := hardwareView{
		ID:            hw.ID,
		ParentID:      hw.ParentID,
		Part:          hw.Part,
		Name:          hw.Name,
		Description:   hw.Description,
		PartNumber:    hw.PartNumber,
		RefDes:        hw.RefDes,
		CompRefDes:    hw.CompRefDes,
		CategoryID:    hw.CategoryID,
		SubcategoryID: hw.SubcategoryID,
		Quantity:      hw.Quantity,
		DutyCycle:     hw.DutyCycle,
		MissionTime:   hw.MissionTime,
		Cost:          hw.Cost,
	}
	if hw.Reliability != nil {
		v.HazardRateActive = hw.Reliability.HazardRateActive
		v.Overstress = hw.Reliability.Overstress
	}
	return v
}

// treeView is one node of a subtree with its stored metrics.
type treeView struct {
	ID         int         `json:"id"`
	Part       bool        `json:"part"`
	Name       string      `json:"name"`
	CompRefDes string      `json:"comp_ref_des"`
	Metrics    bom.Metrics `json:"metrics"`
	Children   []treeView  `json:"children"`
}

func buildTreeView(t *bom.Tree, n *bom.Node) treeView {
	v := treeView{
		ID:         n.ID,
		Part:       n.Part,
		Name:       n.Name,
		CompRefDes: n.CompRefDes,
		Metrics:    n.Metrics,
		Children:   []treeView{},
	}
	for _, c := range t.Children(n.ID) {
		v.Children = append(v.Children, buildTreeView(t, c))
	}
	return v
}

func handleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func (s *Server) handleHardware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		hw, err := hardware.Get(s.db, id)
		if err != nil {
			s.writeError(c, err)
			return
		}
		children, err := hardware.GetChildren(s.db, id)
		if err != nil {
			s.writeError(c, err)
			return
		}
		kids := make([]hardwareView, 0, len(children))
		for _, k := range children {
			kids = append(kids, viewOf(k))
		}
		c.JSON(http.StatusOK, gin.H{
			"hardware": viewOf(*hw),
			"children": kids,
		})
	}
}

func (s *Server) handleTree() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		tree, err := hardware.LoadTree(s.db, id)
		if err != nil {
			s.writeError(c, err)
			return
		}
		root, _ := tree.Node(int(id))
		c.JSON(http.StatusOK, buildTreeView(tree, root))
	}
}

func (s *Server) handleCalculate() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		s.calcMu.Lock()
		start := time.Now()
		res, err := hardware.Recalculate(s.db, hardware.RecalcOpts{
			RootID:       id,
			HRMultiplier: s.hrMultiplier,
			Workers:      s.workers,
			Limits:       s.limits,
			Trigger:      "api",
		})
		s.calcMu.Unlock()
		calculationDuration.WithLabelValues("bom").Observe(time.Since(start).Seconds())
		if err != nil {
			calculationsTotal.WithLabelValues("bom", "error").Inc()
			s.writeError(c, err)
			return
		}
		calculationsTotal.WithLabelValues("bom", "ok").Inc()
		overstressedParts.Observe(float64(res.Run.Overstressed))
		countMessages(res.Message)

		s.logger.Info("bom calculated",
			zap.Uint("root_id", id),
			zap.String("run_id", res.Run.ID),
			zap.Int("nodes", res.Run.Nodes),
			zap.Int("overstressed", res.Run.Overstressed),
		)

		c.JSON(http.StatusOK, gin.H{
			"run_id":                  res.Run.ID,
			"hazard_rate_active":      res.Totals[0],
			"hazard_rate_dormant":     res.Totals[1],
			"hazard_rate_software":    res.Totals[2],
			"total_cost":              res.Totals[3],
			"total_part_count":        res.Totals[4],
			"total_power_dissipation": res.Totals[5],
			"metrics":                 res.Metrics,
			"messages":                splitMessages(res.Message),
		})
	}
}

func (s *Server) handlePredict() gin.HandlerFunc {
	return func(c *gin.Context) {
		var a milhdbk217f.Attributes
		if err := c.ShouldBindJSON(&a); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attributes: " + err.Error()})
			return
		}
		if c.Query("defaults") == "true" {
			a = milhdbk217f.ApplyDefaults(a)
		}

		start := time.Now()
		out, msg := s.dispatcher.Calculate(a)
		calculationDuration.WithLabelValues("predict").Observe(time.Since(start).Seconds())
		calculationsTotal.WithLabelValues("predict", "ok").Inc()
		countMessages(msg)

		c.JSON(http.StatusOK, gin.H{
			"hazard_rate_active":  out.HazardRateActive,
			"hazard_rate_dormant": out.HazardRateDormant,
			"overstress":          out.Overstress,
			"reason":              out.Reason,
			"attributes":          out,
			"messages":            splitMessages(msg),
		})
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hardware id: " + c.Param("id")})
		return 0, false
	}
	return uint(id), true
}

func (s *Server) writeError(c *gin.Context, err error) {
	if errors.Is(err, hardware.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	s.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// splitMessages returns the non-empty lines of a calculation message.
func splitMessages(msg string) []string {
	lines := []string{}
	for _, l := range strings.Split(msg, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func countMessages(msg string) {
	for _, l := range splitMessages(msg) {
		switch {
		case strings.HasPrefix(l, "WARNING: "):
			calculationMessages.WithLabelValues("warning").Inc()
		case strings.HasPrefix(l, "ERROR: "):
			calculationMessages.WithLabelValues("error").Inc()
		}
	}
}
