package game

import "fmt"

const shopMessageDuration = 2.5

// tryPurchase deducts cost from the balance if affordable, reporting
// success. A non-positive cost is rejected like an unaffordable one.
func (g *Game) tryPurchase(cost int) bool {
	if cost <= 0 || g.balance < cost {
		g.setShopMessage("Not enough $")
		return false
	}
	g.balance -= cost
	g.setShopMessage(fmt.Sprintf("Purchased for $%d!", cost))
	return true
}

// addMoney credits the balance and the lifetime-earned total.
func (g *Game) addMoney(amount int) {
	if amount <= 0 {
		return
	}
	g.balance += amount
	g.totalMoney += amount
	g.setShopMessage(fmt.Sprintf("Gained $%d", amount))
}

// grantMoneyFromScore converts score earned since the last conversion
// into whole dollars. The mark only advances by what was actually
// converted, so remainders carry over.
func (g *Game) grantMoneyFromScore() {
	if g.moneyMark < 0 {
		g.moneyMark = 0
	}
	if g.score <= g.moneyMark {
		return
	}
	dollars := (g.score - g.moneyMark) / g.cfg.Gameplay.ScorePerDollar
	if dollars > 0 {
		g.addMoney(dollars)
		g.moneyMark += dollars * g.cfg.Gameplay.ScorePerDollar
	}
}

// setShopMessage replaces any current message, newest wins.
func (g *Game) setShopMessage(msg string) {
	g.shopMessage = msg
	g.shopMessageTimer = shopMessageDuration
}
