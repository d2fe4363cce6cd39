package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// StaticHandler 前端静态文件
// "/"返回index.html,其他未匹配的GET请求按路径查找文件,找不到返回JSON 404
type StaticHandler struct {
	dir string
}

// NewStaticHandler 创建静态文件处理器,dir为空表示不提供前端
func NewStaticHandler(cfg *config.Config) *StaticHandler {
	return &StaticHandler{dir: cfg.Static.Dir}
}

// Index 首页
func (h *StaticHandler) Index(c *gin.Context) {
	h.serve(c, "index.html")
}

// NoRoute 未匹配路由的兜底处理
func (h *StaticHandler) NoRoute(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		response.Error(c, apperrors.ErrNotFound)
		return
	}
	// /api下的路径不会被静态文件遮蔽
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		response.Error(c, apperrors.ErrNotFound)
		return
	}
	h.serve(c, c.Request.URL.Path)
}

func (h *StaticHandler) serve(c *gin.Context, name string) {
	if h.dir == "" {
		response.Error(c, apperrors.ErrNotFound)
		return
	}

	// Clean之后不会再包含..,文件始终位于dir之内
	clean := path.Clean("/" + name)
	full := filepath.Join(h.dir, filepath.FromSlash(clean))

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		response.Error(c, apperrors.ErrNotFound)
		return
	}
	c.File(full)
}
