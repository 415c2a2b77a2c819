package optimizer_test

import (
	"fmt"
	"reflect"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/dannojb/fpl-optimizer-backend/internal/model"
	"github.com/dannojb/fpl-optimizer-backend/internal/optimizer"
)

// testSquad builds a valid 15-player squad (2 GK, 5 DEF, 5 MID, 3 FWD) with
// one player per club and a total cost of 950 tenths. The first goalkeeper
// is deliberately cheap and low-scoring so pool candidates can target it.
func testSquad() []model.Player {
	positions := []model.Position{
		model.Goalkeeper, model.Goalkeeper,
		model.Defender, model.Defender, model.Defender, model.Defender, model.Defender,
		model.Midfielder, model.Midfielder, model.Midfielder, model.Midfielder, model.Midfielder,
		model.Forward, model.Forward, model.Forward,
	}

	squad := make([]model.Player, 0, 15)
	for i, pos := range positions {
		p := model.Player{
			ID:          i + 1,
			WebName:     fmt.Sprintf("Squad%d", i+1),
			Position:    pos,
			TeamName:    fmt.Sprintf("Club %c", 'A'+i),
			NowCost:     65,
			TotalPoints: 200,
			Form:        3.0,
		}
		squad = append(squad, p)
	}
	// Weak first keeper: 40 cost, 50 points. Remaining 14 cost 65 each,
	// so the squad totals 950.
	squad[0].NowCost = 40
	squad[0].TotalPoints = 50
	// Backup keeper outscores the upgrade candidates used in the tests.
	squad[1].TotalPoints = 95
	return squad
}

func testPool() []model.Player {
	return []model.Player{
		{ID: 101, WebName: "KeeperUp", Position: model.Goalkeeper, TeamName: "Club P", NowCost: 40, TotalPoints: 90, Form: 3.0},
		{ID: 102, WebName: "DefUp", Position: model.Defender, TeamName: "Club Q", NowCost: 70, TotalPoints: 230, Form: 4.0},
		{ID: 103, WebName: "MidUp", Position: model.Midfielder, TeamName: "Club R", NowCost: 66, TotalPoints: 260, Form: 5.5},
		{ID: 104, WebName: "FwdDown", Position: model.Forward, TeamName: "Club S", NowCost: 60, TotalPoints: 100, Form: 6.0},
		{ID: 105, WebName: "TooDear", Position: model.Forward, TeamName: "Club T", NowCost: 130, TotalPoints: 280, Form: 5.0},
	}
}

func TestOptimize(t *testing.T) {
	Convey("Given a valid squad and a candidate pool", t, func() {
		squad := testSquad()
		pool := testPool()

		Convey("When optimizing", func() {
			result, err := optimizer.Optimize(squad, pool)
			So(err, ShouldBeNil)

			Convey("Then it returns at most five recommendations", func() {
				So(len(result.Recommendations), ShouldBeLessThanOrEqualTo, optimizer.MaxRecommendations)
				So(len(result.Recommendations), ShouldBeGreaterThan, 0)
			})

			Convey("And every swap keeps the position", func() {
				for _, rec := range result.Recommendations {
					So(rec.PlayerIn.Position, ShouldEqual, rec.PlayerOut.Position)
				}
			})

			Convey("And every swap respects the budget cap", func() {
				for _, rec := range result.Recommendations {
					newCost := optimizer.TeamCost(squad) - rec.PlayerOut.NowCost + rec.PlayerIn.NowCost
					So(newCost, ShouldBeLessThanOrEqualTo, optimizer.BudgetCap)
				}
			})

			Convey("And no club ends up with more than three players", func() {
				for _, rec := range result.Recommendations {
					counts := map[string]int{}
					for _, p := range squad {
						if p.ID != rec.PlayerOut.ID {
							counts[p.TeamName]++
						}
					}
					counts[rec.PlayerIn.TeamName]++
					for _, n := range counts {
						So(n, ShouldBeLessThanOrEqualTo, 3)
					}
				}
			})

			Convey("And no outgoing player appears twice", func() {
				seen := map[int]bool{}
				for _, rec := range result.Recommendations {
					So(seen[rec.PlayerOut.ID], ShouldBeFalse)
					seen[rec.PlayerOut.ID] = true
				}
			})

			Convey("And output is sorted by season-point improvement", func() {
				for i := 1; i < len(result.Recommendations); i++ {
					prev := result.Recommendations[i-1]
					cur := result.Recommendations[i]
					So(prev.PlayerIn.TotalPoints-prev.PlayerOut.TotalPoints,
						ShouldBeGreaterThanOrEqualTo,
						cur.PlayerIn.TotalPoints-cur.PlayerOut.TotalPoints)
				}
			})

			Convey("And a downgrade candidate is never proposed", func() {
				for _, rec := range result.Recommendations {
					So(rec.PlayerIn.TotalPoints, ShouldBeGreaterThan, rec.PlayerOut.TotalPoints)
					So(rec.PlayerIn.ID, ShouldNotEqual, 104)
				}
			})
		})

		Convey("When optimizing twice with identical inputs", func() {
			first, err1 := optimizer.Optimize(squad, pool)
			second, err2 := optimizer.Optimize(squad, pool)

			Convey("Then the output is identical and identically ordered", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(reflect.DeepEqual(first, second), ShouldBeTrue)
			})
		})
	})

	Convey("Given a squad of 14 players", t, func() {
		squad := testSquad()[:14]

		Convey("When optimizing", func() {
			result, err := optimizer.Optimize(squad, testPool())

			Convey("Then it reports the squad size error with an empty result", func() {
				So(err, ShouldEqual, optimizer.ErrSquadSize)
				So(result.Recommendations, ShouldBeEmpty)
			})
		})
	})
}

func TestOptimizeEqualPriceKeeperUpgrade(t *testing.T) {
	Convey("Given a 950-cost squad with a 40/50pt keeper and a 40/90pt candidate", t, func() {
		squad := testSquad()
		pool := []model.Player{
			{ID: 101, WebName: "KeeperUp", Position: model.Goalkeeper, TeamName: "Club P", NowCost: 40, TotalPoints: 90, Form: 3.0},
		}

		Convey("When optimizing", func() {
			result, err := optimizer.Optimize(squad, pool)
			So(err, ShouldBeNil)

			Convey("Then the free keeper upgrade is recommended", func() {
				So(len(result.Recommendations), ShouldEqual, 1)
				rec := result.Recommendations[0]
				So(rec.PlayerOut.ID, ShouldEqual, 1)
				So(rec.PlayerIn.ID, ShouldEqual, 101)
				So(rec.CostChange, ShouldEqual, 0)
			})

			Convey("And the points rule outranks the equal-price rule", func() {
				// points_diff=40 with no form edge lands on the season-total
				// rule, not "Equal price".
				So(result.Recommendations[0].Rationale, ShouldEqual, "Higher season total (+40 points)")
			})
		})
	})
}

func TestOptimizeClubLimit(t *testing.T) {
	Convey("Given a squad already holding three players from one club", t, func() {
		squad := testSquad()
		squad[2].TeamName = "Leeds"
		squad[3].TeamName = "Leeds"
		squad[4].TeamName = "Leeds"

		Convey("And a strong candidate from that club targeting another slot", func() {
			pool := []model.Player{
				{ID: 201, WebName: "LeedsMid", Position: model.Midfielder, TeamName: "Leeds", NowCost: 66, TotalPoints: 300, Form: 6.0},
			}

			Convey("When optimizing, the swap is filtered out", func() {
				result, err := optimizer.Optimize(squad, pool)
				So(err, ShouldBeNil)
				So(result.Recommendations, ShouldBeEmpty)
			})
		})

		Convey("And a candidate from that club replacing one of its own", func() {
			pool := []model.Player{
				{ID: 202, WebName: "LeedsDef", Position: model.Defender, TeamName: "Leeds", NowCost: 66, TotalPoints: 300, Form: 6.0},
			}

			Convey("When optimizing, only like-for-like swaps survive", func() {
				result, err := optimizer.Optimize(squad, pool)
				So(err, ShouldBeNil)
				// One surviving swap per Leeds defender; replacing any
				// other defender would put four Leeds players in the squad.
				So(len(result.Recommendations), ShouldEqual, 3)
				for _, rec := range result.Recommendations {
					So(rec.PlayerOut.TeamName, ShouldEqual, "Leeds")
				}
			})
		})
	})
}

func TestOptimizeDedupKeepsGenerationOrder(t *testing.T) {
	Convey("Given several upgrades for the same outgoing player", t, func() {
		squad := testSquad()
		// Both candidates beat the weak keeper. The 10-point upgrade is free
		// so its value score dwarfs the priced 35-point upgrade; dedup must
		// keep the first generated (highest value score), not the bigger
		// improvement.
		pool := []model.Player{
			{ID: 301, WebName: "SmallFree", Position: model.Goalkeeper, TeamName: "Club P", NowCost: 40, TotalPoints: 60, Form: 3.0},
			{ID: 302, WebName: "BigPriced", Position: model.Goalkeeper, TeamName: "Club Q", NowCost: 45, TotalPoints: 85, Form: 3.0},
		}

		Convey("When optimizing", func() {
			result, err := optimizer.Optimize(squad, pool)
			So(err, ShouldBeNil)

			Convey("Then only the first-generated swap survives for that player", func() {
				So(len(result.Recommendations), ShouldEqual, 1)
				So(result.Recommendations[0].PlayerIn.ID, ShouldEqual, 301)
			})
		})
	})
}
