package config

import "rampart/game"

// The classic base layout: corners anchored, a forward wall funnel, the
// generator stack tucked behind it, and a turret ring around the funnel
// mouth.

var defaultCoreTurrets = game.Locations(
	[2]int{5, 10}, [2]int{22, 10},
)

var defaultCoreWalls = game.Locations(
	[2]int{5, 11}, [2]int{6, 11}, [2]int{21, 11}, [2]int{22, 11},
	[2]int{6, 9}, [2]int{21, 9}, [2]int{7, 8}, [2]int{20, 8},
	[2]int{8, 7}, [2]int{19, 7}, [2]int{9, 6}, [2]int{18, 6},
	[2]int{10, 5}, [2]int{12, 5}, [2]int{13, 5}, [2]int{14, 5},
	[2]int{15, 5}, [2]int{17, 5}, [2]int{11, 4}, [2]int{16, 4},
	[2]int{3, 11}, [2]int{2, 12}, [2]int{1, 13},
	[2]int{24, 11}, [2]int{25, 12}, [2]int{26, 13},
)

var defaultGeneratorLine = game.Locations(
	[2]int{13, 3}, [2]int{14, 3}, [2]int{13, 2}, [2]int{14, 2},
	[2]int{13, 1}, [2]int{14, 1}, [2]int{13, 0}, [2]int{14, 0},
	[2]int{12, 1}, [2]int{15, 1}, [2]int{12, 2}, [2]int{15, 2},
)

var defaultSecondaryTurrets = game.Locations(
	[2]int{27, 13}, [2]int{0, 13}, [2]int{21, 10}, [2]int{6, 10},
	[2]int{26, 12}, [2]int{25, 11}, [2]int{1, 12}, [2]int{24, 10},
	[2]int{2, 11}, [2]int{3, 10}, [2]int{20, 10}, [2]int{20, 9},
)

var defaultWallUpgrades = game.Locations(
	[2]int{5, 11}, [2]int{6, 11}, [2]int{21, 11}, [2]int{22, 11},
	[2]int{6, 9}, [2]int{21, 9}, [2]int{3, 11}, [2]int{2, 12},
	[2]int{1, 13}, [2]int{24, 11}, [2]int{25, 12}, [2]int{26, 13},
)

var defaultInterceptorPosts = game.Locations(
	[2]int{6, 7}, [2]int{21, 7},
)

var defaultRushLanes = game.Locations(
	[2]int{11, 2}, [2]int{16, 2},
)
