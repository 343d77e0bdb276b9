package api

import (
	"github.com/pixelboard/pixelboard-go/lib"
	"github.com/pixelboard/pixelboard-go/lib/api/canvas"
	"github.com/pixelboard/pixelboard-go/lib/api/stats"
	"github.com/pixelboard/pixelboard-go/lib/api/user"
)

func InitAPI(store *lib.InitStore) {
	canvas.Init(store)
	user.Init(store)
	stats.Init(store)
}
