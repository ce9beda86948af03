package main

import (
	"log"

	"github.com/Binarysearch/cube-wars/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ebiten.SetWindowTitle("Cube Wars")
	ebiten.SetWindowSize(1280, 720)
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
