package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/zhakazx/animeinfo/api/v1"
	"github.com/zhakazx/animeinfo/internal/handlers"
	"github.com/zhakazx/animeinfo/internal/models"
	srvErrors "github.com/zhakazx/animeinfo/pkg/errors"
)

var _ = Describe("Home and Queue Handlers", func() {
	var (
		mockHome  *MockHomeService
		mockQueue *MockQueueService
		router    *gin.Engine
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		mockHome = &MockHomeService{}
		mockQueue = &MockQueueService{}
		handler := handlers.New(mockHome, &MockAnimeService{}, &MockMetadataService{}, mockQueue)
		router = gin.New()
		v1.RegisterHandlersWithOptions(router, handler, v1.GinServerOptions{ErrorHandler: handlers.ErrorHandler})
	})

	Describe("GetHome", func() {
		It("should return all four sections", func() {
			mockHome.Result = &models.HomePage{
				Featured: []models.Anime{{MalID: 1}},
				Trending: []models.Anime{},
				Popular:  []models.Anime{{MalID: 2}},
				Top:      []models.Anime{{MalID: 1}, {MalID: 3}},
			}

			req := httptest.NewRequest(http.MethodGet, "/home", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var response v1.HomePage
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Featured).To(HaveLen(1))
			Expect(response.Trending).To(BeEmpty())
			Expect(response.Trending).NotTo(BeNil())
			Expect(response.Top).To(HaveLen(2))
		})

		It("should fail when every section failed", func() {
			mockHome.Error = srvErrors.NewUpstreamUnreachableError("jikan", errors.New("dial tcp"))

			req := httptest.NewRequest(http.MethodGet, "/home", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusGatewayTimeout))
		})
	})

	Describe("GetQueueStatus", func() {
		It("should report the serializer state", func() {
			mockQueue.StatusResult = models.SerializerStatus{
				State:       models.SerializerDraining,
				Pending:     4,
				Dispatched:  12,
				MinInterval: 334 * time.Millisecond,
			}

			req := httptest.NewRequest(http.MethodGet, "/queue", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var response v1.QueueStatus
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response.State).To(Equal(v1.QueueStatusStateDraining))
			Expect(response.Pending).To(Equal(4))
			Expect(response.Dispatched).To(BeEquivalentTo(12))
			Expect(response.MinIntervalMs).To(BeEquivalentTo(334))
			Expect(response.LastDispatch).To(BeNil())
		})
	})
})
