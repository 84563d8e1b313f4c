package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-pathfinder/api"
	boardapi "github.com/beka-birhanu/vinom-pathfinder/api/board"
	api_i "github.com/beka-birhanu/vinom-pathfinder/api/i"
	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/logger"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	mazeGenerator   *maze.Generator
	boardManager    i.BoardManager
	boardController api_i.Controller
	router          *api.Router
	appLogger       *logger.Logger
)

func initMazeGenerator() {
	var err error
	mazeGenerator, err = maze.NewSeeded(config.Envs.MazeSeed)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze generator: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Maze generator initialized with seed %d", config.Envs.MazeSeed))
}

func initBoardManager() {
	boardLogger, err := logger.New("BOARD-MANAGER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating board manager logger: %v", err))
		os.Exit(1)
	}

	boardManager, err = service.NewBoardManager(&service.Config{
		Maze:   mazeGenerator,
		Logger: boardLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating board manager: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Board manager initialized")
}

func initBoardController() {
	var err error
	boardController, err = boardapi.NewBoardController(boardManager)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating board controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Board controller initialized")
}

func initRouter() {
	routerLogger, err := logger.New("ROUTER", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating router logger: %v", err))
		os.Exit(1)
	}

	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{boardController},
		Logger:      routerLogger,
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initMazeGenerator()
	initBoardManager()
	initBoardController()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
