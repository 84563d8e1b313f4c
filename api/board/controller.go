package boardapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-pathfinder/animation"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BoardController serves the board routes.
type BoardController struct {
	boardManager i.BoardManager
}

// NewBoardController initializes a BoardController.
func NewBoardController(bm i.BoardManager) (*BoardController, error) {
	if bm == nil {
		return nil, errors.New("board manager is required")
	}
	return &BoardController{boardManager: bm}, nil
}

// Register registers the board routes.
func (bc *BoardController) Register(route *gin.RouterGroup) {
	boards := route.Group("/boards")
	{
		boards.POST("", bc.create)
		boards.GET("/:ID", bc.get)
		boards.DELETE("/:ID", bc.delete)
		boards.PUT("/:ID/walls", bc.toggleWall)
		boards.DELETE("/:ID/walls", bc.clearWalls)
		boards.POST("/:ID/search", bc.search)
		boards.GET("/:ID/search/stream", bc.streamSearch)
		boards.POST("/:ID/maze", bc.maze)
	}
}

// create handles board creation.
func (bc *BoardController) create(ctx *gin.Context) {
	id := bc.boardManager.NewBoard()
	g, err := bc.boardManager.Snapshot(id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newBoardResponse(id, g))
}

// get returns a board as JSON, or as ASCII with ?format=text.
func (bc *BoardController) get(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	g, err := bc.boardManager.Snapshot(id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	if ctx.Query("format") == "text" {
		ctx.String(http.StatusOK, g.String())
		return
	}
	ctx.JSON(http.StatusOK, newBoardResponse(id, g))
}

// delete drops a board.
func (bc *BoardController) delete(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	if err := bc.boardManager.Delete(id); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// toggleWall flips the wall flag of one cell.
func (bc *BoardController) toggleWall(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	var request ToggleWallRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := bc.boardManager.ToggleWall(id, *request.Row, *request.Col)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBoardResponse(id, g))
}

// clearWalls removes every wall.
func (bc *BoardController) clearWalls(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	g, err := bc.boardManager.ClearWalls(id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBoardResponse(id, g))
}

// search runs the shortest-path search and returns the full replay.
func (bc *BoardController) search(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	v, err := bc.boardManager.Visualize(id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &SearchResponse{
		Found:   v.Found,
		Visited: nonNil(v.Visited),
		Path:    nonNil(v.Path),
		Events:  newEventResponses(v.Events),
	})
}

// streamSearch runs the search and replays its events as server-sent events
// paced by ?speed (default 1). The replay stops when the client goes away.
func (bc *BoardController) streamSearch(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	speed := 1.0
	if raw := ctx.Query("speed"); raw != "" {
		s, err := strconv.ParseFloat(raw, 64)
		if err != nil || s <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": animation.ErrInvalidSpeed.Error()})
			return
		}
		speed = s
	}

	v, err := bc.boardManager.Visualize(id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	events, err := animation.Stream(ctx.Request.Context(), v.Events, speed)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for e := range events {
		ctx.SSEvent("transition", newEventResponse(e))
		ctx.Writer.Flush()
	}

	if ctx.Request.Context().Err() == nil {
		ctx.SSEvent("done", gin.H{"found": v.Found})
		ctx.Writer.Flush()
	}
}

// maze replaces the board's walls with a generated maze.
func (bc *BoardController) maze(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	res, err := bc.boardManager.GenerateMaze(id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &MazeResponse{
		Walls:  nonNil(res.Walls),
		Events: newEventResponses(res.Events),
	})
}

// boardID parses the :ID path parameter, answering 400 when it is not a UUID.
func boardID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid board id"})
		return uuid.Nil, false
	}
	return id, true
}

// abortWithError maps service and grid errors to status codes.
func abortWithError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBoardNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "board not found"})
	case errors.Is(err, grid.ErrOutOfBounds):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
	}
}
