package backup

import (
	"net/http"
	"time"

	"github.com/arrahmanlabs/waitlist-api/config/router"
	apperrors "github.com/arrahmanlabs/waitlist-api/pkg/errors"
)

type SnapshotData struct {
	File string `json:"file"`
}

func NewBackupController(
	service BackupService,
	requireAdmin router.MiddlewareFunc,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"BackupController",
		"api",
		"/backup",
		func(rs *router.RouterService, c *router.RESTController) {
			rs.AddRawGetHandler(c, nil, "/export-csv", exportCSVHandler(service), requireAdmin)
			rs.AddPostHandler(c, nil, "/create", createSnapshotHandler(service), requireAdmin)
		},
	)
}

func exportCSVHandler(service BackupService) router.MiddlewareFunc {
	return func(ctx *router.RequestContext) {
		logger := router.GetLogger(ctx)

		fileName := "waitlist_responses_" + time.Now().UTC().Format("20060102") + ".csv"
		ctx.Header("Content-Type", "text/csv; charset=utf-8")
		ctx.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
		ctx.Status(http.StatusOK)

		rows, err := service.WriteCSV(ctx.Request.Context(), ctx.Writer)
		if err != nil {
			// Headers are already on the wire; all that is left is to log.
			logger.Error("CSV export failed mid-stream", "rows", rows, "error", err)
			return
		}

		logger.Info("CSV export completed", "rows", rows)
	}
}

func createSnapshotHandler(service BackupService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		fileName, err := service.CreateSnapshot(ctx.Request.Context())
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.CreatedResult(SnapshotData{File: fileName}, "Backup")
	}
}
