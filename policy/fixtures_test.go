package policy_test

const chiton = `
1163751742
1381373672
2136511328
3694931569
7463417111
1319128137
1359912421
3125421639
1293138521
2311944581
`

const heightmap = `
Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

const lava = `
2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

const lavaUltra = `
111111111111
999999999991
999999999991
999999999991
999999999991
`

const reindeerMaze = `
###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

// one turn after two steps east, then three steps south
const turnCorridor = `
#######
#S..###
###.###
###.###
###E###
#######
`

// the outer U needs 18 steps and 2 turns, the inner stair 10 steps and 4 turns
const turnDetour = `
##########
#E.......#
##.#####.#
##...###.#
####.###.#
#S.......#
##########
`

const valley = `
#.######
#>>.<^<#
#.<..<<#
#>v.><>#
#<^v^^>#
######.#
`

const memoryBytes = `
5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0
`
