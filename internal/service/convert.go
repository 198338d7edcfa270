package service

import (
	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/pkg/api"
)

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		Id:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

func toAPIGroup(g *models.Group) *api.Group {
	group := &api.Group{
		Id:        g.ID,
		Name:      g.Name,
		CreatedBy: g.CreatedBy,
		CreatedAt: g.CreatedAt,
	}
	for _, m := range g.Members {
		group.Members = append(group.Members, api.Member{UserId: m.UserID, Username: m.Username})
	}
	return group
}

func toAPIExpense(e *models.Expense) *api.Expense {
	return &api.Expense{
		Id:             e.ID,
		GroupId:        e.GroupID,
		PaidBy:         e.PaidBy,
		PaidByUsername: e.PaidByUsername,
		Amount:         e.Amount,
		Description:    e.Description,
		CreatedAt:      e.CreatedAt,
	}
}

func toAPIPayment(p *models.Payment) *api.Payment {
	return &api.Payment{
		Id:         p.ID,
		GroupId:    p.GroupID,
		FromUserId: p.FromUserID,
		ToUserId:   p.ToUserID,
		Amount:     p.Amount,
		CreatedAt:  p.CreatedAt,
	}
}

func toAPIBalance(b calculator.Balance) *api.MemberBalance {
	return &api.MemberBalance{
		UserId:   b.MemberID,
		Username: b.Name,
		Balance:  b.Amount,
		Paid:     b.Paid,
		Sent:     b.Sent,
		Received: b.Received,
		Share:    b.Share,
	}
}

func toAPITransfer(t calculator.Transfer) *api.Transfer {
	return &api.Transfer{
		FromUserId: t.FromID,
		ToUserId:   t.ToID,
		Amount:     t.Amount,
	}
}
