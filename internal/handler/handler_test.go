package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/printfjoby/Launchpad/internal/engine"
)

var (
	creatorAddr     = "0x00000000000000000000000000000000000000a1"
	contributorAddr = "0x00000000000000000000000000000000000000b1"
)

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time {
	return c.now
}

// newTestRouter 只挂引擎写路径，镜像读路径需要数据库，这里不覆盖
func newTestRouter(percent int) (*gin.Engine, *stubClock) {
	gin.SetMode(gin.TestMode)

	clock := &stubClock{now: time.Unix(1_700_000_000, 0)}
	launchpad := engine.NewLaunchpad(engine.Policy{ApprovalPercent: percent}, clock, nil)

	projectHandler := NewProjectHandler(launchpad, nil)
	contributeHandler := NewContributeHandler(launchpad, nil)
	refundHandler := NewRefundHandler(launchpad, nil)
	withdrawHandler := NewWithdrawHandler(launchpad, nil)

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		v1.POST("/projects", projectHandler.CreateProject)
		v1.GET("/projects/:id", projectHandler.GetProject)
		v1.POST("/projects/:id/contributions", contributeHandler.Contribute)
		v1.POST("/projects/:id/refunds", refundHandler.ClaimRefund)
		v1.POST("/withdraw-requests", withdrawHandler.CreateWithdrawRequest)
		v1.GET("/withdraw-requests/:id", withdrawHandler.GetWithdrawRequest)
		v1.POST("/withdraw-requests/:id/votes", withdrawHandler.VoteWithdrawRequest)
		v1.POST("/withdraw-requests/:id/withdraw", withdrawHandler.ReleaseWithdrawal)
	}
	return r, clock
}

func doRequest(t *testing.T, r *gin.Engine, method, path, caller string, body interface{}) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set(CallerHeader, caller)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func createProject(t *testing.T, r *gin.Engine, goal string, durationSeconds int64) uint64 {
	t.Helper()
	w, resp := doRequest(t, r, http.MethodPost, "/api/v1/projects", creatorAddr, CreateProjectRequest{
		Title:           "My Project",
		Description:     "Description of my project",
		GoalAmount:      goal,
		DurationSeconds: durationSeconds,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("CreateProject status = %d, body %s", w.Code, w.Body.String())
	}
	data := resp.Data.(map[string]interface{})
	return uint64(data["project_id"].(float64))
}

func contribute(t *testing.T, r *gin.Engine, projectId uint64, caller, amount string) {
	t.Helper()
	w, _ := doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/api/v1/projects/%d/contributions", projectId),
		caller, ContributeRequest{Amount: amount})
	if w.Code != http.StatusOK {
		t.Fatalf("Contribute status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestCreateProjectEndpoint(t *testing.T) {
	r, _ := newTestRouter(0)

	projectId := createProject(t, r, "1000", 3600)
	if projectId != 1 {
		t.Errorf("project_id = %d, want 1", projectId)
	}

	w, resp := doRequest(t, r, http.MethodGet, "/api/v1/projects/1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GetProject status = %d", w.Code)
	}
	project := resp.Data.(map[string]interface{})["project"].(map[string]interface{})
	if project["goalAmount"] != "1000" {
		t.Errorf("goalAmount = %v, want 1000", project["goalAmount"])
	}
	if project["status"] != "active" {
		t.Errorf("status = %v, want active", project["status"])
	}
	if project["creator"] != common.HexToAddress(creatorAddr).Hex() {
		t.Errorf("creator = %v, want %s", project["creator"], creatorAddr)
	}
}

func TestCreateProjectRejectsBadInput(t *testing.T) {
	r, _ := newTestRouter(0)

	tests := []struct {
		name       string
		caller     string
		body       interface{}
		wantStatus int
	}{
		{
			name:       "missing caller header",
			caller:     "",
			body:       CreateProjectRequest{Title: "t", GoalAmount: "1000", DurationSeconds: 3600},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed caller address",
			caller:     "not-an-address",
			body:       CreateProjectRequest{Title: "t", GoalAmount: "1000", DurationSeconds: 3600},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-numeric goal",
			caller:     creatorAddr,
			body:       CreateProjectRequest{Title: "t", GoalAmount: "abc", DurationSeconds: 3600},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero goal",
			caller:     creatorAddr,
			body:       CreateProjectRequest{Title: "t", GoalAmount: "0", DurationSeconds: 3600},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing title",
			caller:     creatorAddr,
			body:       CreateProjectRequest{GoalAmount: "1000", DurationSeconds: 3600},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := doRequest(t, r, http.MethodPost, "/api/v1/projects", tt.caller, tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if resp.Success {
				t.Error("success = true, want false")
			}
		})
	}
}

func TestContributeEndpoint(t *testing.T) {
	r, _ := newTestRouter(0)
	projectId := createProject(t, r, "1000", 3600)

	contribute(t, r, projectId, contributorAddr, "400")

	_, resp := doRequest(t, r, http.MethodGet, "/api/v1/projects/1", "", nil)
	project := resp.Data.(map[string]interface{})["project"].(map[string]interface{})
	if project["raisedAmount"] != "400" {
		t.Errorf("raisedAmount = %v, want 400", project["raisedAmount"])
	}
}

func TestContributeUnknownProject(t *testing.T) {
	r, _ := newTestRouter(0)

	w, resp := doRequest(t, r, http.MethodPost, "/api/v1/projects/99/contributions",
		contributorAddr, ContributeRequest{Amount: "100"})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if resp.Code != "NOT_FOUND" {
		t.Errorf("code = %q, want NOT_FOUND", resp.Code)
	}
}

func TestContributeAfterGoalReached(t *testing.T) {
	r, _ := newTestRouter(0)
	projectId := createProject(t, r, "1000", 3600)
	contribute(t, r, projectId, contributorAddr, "1000")

	w, resp := doRequest(t, r, http.MethodPost, "/api/v1/projects/1/contributions",
		contributorAddr, ContributeRequest{Amount: "1"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422, body %s", w.Code, w.Body.String())
	}
	if resp.Code != "NOT_ACTIVE" {
		t.Errorf("code = %q, want NOT_ACTIVE", resp.Code)
	}
}

func TestClaimRefundEndpoint(t *testing.T) {
	r, clock := newTestRouter(0)
	projectId := createProject(t, r, "1000", 3600)
	contribute(t, r, projectId, contributorAddr, "400")

	// 截止后未达标，项目失败
	clock.now = clock.now.Add(2 * time.Hour)

	w, resp := doRequest(t, r, http.MethodPost, "/api/v1/projects/1/refunds", contributorAddr, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("ClaimRefund status = %d, body %s", w.Code, w.Body.String())
	}
	data := resp.Data.(map[string]interface{})
	if data["amount"] != "400" {
		t.Errorf("refund amount = %v, want 400", data["amount"])
	}

	// 二次申领
	w, resp = doRequest(t, r, http.MethodPost, "/api/v1/projects/1/refunds", contributorAddr, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("second claim status = %d, want 422", w.Code)
	}
	if resp.Code != "NO_CONTRIBUTION" {
		t.Errorf("code = %q, want NO_CONTRIBUTION", resp.Code)
	}
}

func TestWithdrawGovernanceFlow(t *testing.T) {
	r, _ := newTestRouter(50)
	projectId := createProject(t, r, "1000", 3600)
	contribute(t, r, projectId, contributorAddr, "1000")

	// 创建提款请求
	w, resp := doRequest(t, r, http.MethodPost, "/api/v1/withdraw-requests", creatorAddr,
		CreateWithdrawRequestRequest{ProjectId: projectId, Description: "milestone 1", Amount: "600"})
	if w.Code != http.StatusCreated {
		t.Fatalf("CreateWithdrawRequest status = %d, body %s", w.Code, w.Body.String())
	}
	requestId := uint64(resp.Data.(map[string]interface{})["request_id"].(float64))
	if requestId != 1 {
		t.Fatalf("request_id = %d, want 1", requestId)
	}

	// 未达阈值时拒绝释放
	w, resp = doRequest(t, r, http.MethodPost, "/api/v1/withdraw-requests/1/withdraw", creatorAddr, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("premature release status = %d, want 422", w.Code)
	}
	if resp.Code != "INSUFFICIENT_VOTES" {
		t.Errorf("code = %q, want INSUFFICIENT_VOTES", resp.Code)
	}

	// 投票，权重为贡献全额
	w, resp = doRequest(t, r, http.MethodPost, "/api/v1/withdraw-requests/1/votes", contributorAddr, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Vote status = %d, body %s", w.Code, w.Body.String())
	}
	if weight := resp.Data.(map[string]interface{})["weight"]; weight != "1000" {
		t.Errorf("vote weight = %v, want 1000", weight)
	}

	// 重复投票
	w, resp = doRequest(t, r, http.MethodPost, "/api/v1/withdraw-requests/1/votes", contributorAddr, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("second vote status = %d, want 409", w.Code)
	}
	if resp.Code != "ALREADY_VOTED" {
		t.Errorf("code = %q, want ALREADY_VOTED", resp.Code)
	}

	// 非创建者不能释放
	w, _ = doRequest(t, r, http.MethodPost, "/api/v1/withdraw-requests/1/withdraw", contributorAddr, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("non-creator release status = %d, want 403", w.Code)
	}

	// 创建者释放
	w, resp = doRequest(t, r, http.MethodPost, "/api/v1/withdraw-requests/1/withdraw", creatorAddr, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Release status = %d, body %s", w.Code, w.Body.String())
	}
	if amount := resp.Data.(map[string]interface{})["amount"]; amount != "600" {
		t.Errorf("released amount = %v, want 600", amount)
	}

	// 重复释放
	w, resp = doRequest(t, r, http.MethodPost, "/api/v1/withdraw-requests/1/withdraw", creatorAddr, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("second release status = %d, want 409", w.Code)
	}
	if resp.Code != "ALREADY_WITHDRAWN" {
		t.Errorf("code = %q, want ALREADY_WITHDRAWN", resp.Code)
	}

	// 请求详情反映已提款
	_, resp = doRequest(t, r, http.MethodGet, "/api/v1/withdraw-requests/1", "", nil)
	request := resp.Data.(map[string]interface{})["request"].(map[string]interface{})
	if request["isWithdrawn"] != true {
		t.Errorf("isWithdrawn = %v, want true", request["isWithdrawn"])
	}
}

func TestParseAmount(t *testing.T) {
	huge := new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil)

	if got, ok := parseAmount(huge.String()); !ok || got.Cmp(huge) != 0 {
		t.Errorf("parseAmount(%s) = %v, %v", huge, got, ok)
	}
	if _, ok := parseAmount("0x10"); ok {
		t.Error("parseAmount accepted hex input")
	}
	if _, ok := parseAmount(""); ok {
		t.Error("parseAmount accepted empty input")
	}
}
