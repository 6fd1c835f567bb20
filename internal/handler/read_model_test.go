package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/printfjoby/Launchpad/internal/logic"
	"github.com/printfjoby/Launchpad/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newMirrorDB 内存 sqlite 镜像库，单连接保证同库
func newMirrorDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("access sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.ProjectModel{},
		&model.ContributeRecordModel{},
		&model.RefundRecordModel{},
		&model.WithdrawRequestModel{},
		&model.VoteRecordModel{},
		&model.EventModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedProjects(t *testing.T, db *gorm.DB, count int) {
	t.Helper()
	projectLogic := logic.NewProjectLogic(db)
	for i := 1; i <= count; i++ {
		err := projectLogic.CreateProject(&model.ProjectModel{
			Id:              int64(i),
			Title:           fmt.Sprintf("Project %d", i),
			CreatorAddress:  creatorAddr,
			GoalAmount:      "1000",
			RaisedAmount:    "0",
			WithdrawnAmount: "0",
			Deadline:        time.Unix(1_700_000_000, 0).Add(time.Hour),
			Status:          model.ProjectStatusActive,
		})
		if err != nil {
			t.Fatalf("seed project %d: %v", i, err)
		}
	}
}

func newReadRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	projectHandler := NewProjectHandler(nil, logic.NewProjectLogic(db))
	contributeHandler := NewContributeHandler(nil, logic.NewContributeRecordLogic(db))

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		v1.GET("/projects", projectHandler.GetProjects)
		v1.GET("/projects/stats", projectHandler.GetAllProjectStats)
		v1.GET("/projects/:id/contributions", contributeHandler.GetProjectContributeRecords)
	}
	return r
}

func TestGetProjectsPagination(t *testing.T) {
	db := newMirrorDB(t)
	seedProjects(t, db, 3)
	r := newReadRouter(db)

	w, resp := doRequest(t, r, http.MethodGet, "/api/v1/projects?page=1&page_size=2", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !resp.Success {
		t.Fatal("success = false")
	}

	data := resp.Data.(map[string]interface{})
	projects := data["projects"].([]interface{})
	if len(projects) != 2 {
		t.Fatalf("page 1 size = %d, want 2", len(projects))
	}
	// 列表按 id 倒序
	first := projects[0].(map[string]interface{})
	if first["id"].(float64) != 3 {
		t.Errorf("first project id = %v, want 3", first["id"])
	}

	pagination := data["pagination"].(map[string]interface{})
	if pagination["total"].(float64) != 3 {
		t.Errorf("total = %v, want 3", pagination["total"])
	}
	if pagination["totalPage"].(float64) != 2 {
		t.Errorf("totalPage = %v, want 2", pagination["totalPage"])
	}

	// 末页
	_, resp = doRequest(t, r, http.MethodGet, "/api/v1/projects?page=2&page_size=2", "", nil)
	projects = resp.Data.(map[string]interface{})["projects"].([]interface{})
	if len(projects) != 1 {
		t.Errorf("page 2 size = %d, want 1", len(projects))
	}
}

func TestGetProjectContributeRecordsPagination(t *testing.T) {
	db := newMirrorDB(t)
	seedProjects(t, db, 1)
	contributeLogic := logic.NewContributeRecordLogic(db)
	for i := 0; i < 3; i++ {
		err := contributeLogic.CreateContributeRecord(&model.ContributeRecordModel{
			ProjectId: 1,
			Address:   contributorAddr,
			Amount:    "100",
		})
		if err != nil {
			t.Fatalf("seed contribute record: %v", err)
		}
	}
	r := newReadRouter(db)

	w, resp := doRequest(t, r, http.MethodGet, "/api/v1/projects/1/contributions?page=2&page_size=2", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	data := resp.Data.(map[string]interface{})
	records := data["records"].([]interface{})
	if len(records) != 1 {
		t.Errorf("page 2 size = %d, want 1", len(records))
	}
	pagination := data["pagination"].(map[string]interface{})
	if pagination["total"].(float64) != 3 {
		t.Errorf("total = %v, want 3", pagination["total"])
	}
}

func TestGetAllProjectStatsEndpoint(t *testing.T) {
	db := newMirrorDB(t)
	seedProjects(t, db, 2)
	r := newReadRouter(db)

	w, resp := doRequest(t, r, http.MethodGet, "/api/v1/projects/stats", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	stats := resp.Data.(map[string]interface{})["stats"].(map[string]interface{})
	if stats["totalProjects"].(float64) != 2 {
		t.Errorf("totalProjects = %v, want 2", stats["totalProjects"])
	}
	if stats["activeProjects"].(float64) != 2 {
		t.Errorf("activeProjects = %v, want 2", stats["activeProjects"])
	}
}
