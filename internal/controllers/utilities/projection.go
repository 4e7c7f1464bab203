package utilityController

import (
	. "rentledger/internal/models"
	"rentledger/internal/services"
	"rentledger/internal/types"
)

// ToUtilityResponse flattens a record with its Room.Floor.House preloaded.
// Money is fixed to two decimals here and nowhere earlier.
func ToUtilityResponse(utility *Utility) types.UtilityResponse {
	response := types.UtilityResponse{
		ID:         utility.ID,
		RoomID:     utility.RoomID,
		Month:      utility.Month.Format("2006-01"),
		OldWater:   utility.OldWater.String(),
		NewWater:   utility.NewWater.String(),
		WaterUsage: utility.WaterUsage().String(),
		WaterRate:  utility.WaterRate.StringFixed(2),
		RoomCost:   utility.RoomCost.StringFixed(2),
		WaterCost:  utility.WaterCost.StringFixed(2),
		TotalCost:  utility.RoomCost.Add(utility.WaterCost).StringFixed(2),
		IsPaid:     utility.IsPaid,
		CreatedAt:  utility.CreatedAt,
	}

	if room := utility.Room; room != nil {
		response.RoomName = room.Name
		if floor := room.Floor; floor != nil {
			response.FloorName = services.FloorLabel(floor)
			if house := floor.House; house != nil {
				response.HouseID = house.ID
				response.HouseName = house.Name
			}
		}
	}

	return response
}

func ToUtilityResponses(utilities []*Utility) []types.UtilityResponse {
	responses := make([]types.UtilityResponse, 0, len(utilities))
	for _, utility := range utilities {
		responses = append(responses, ToUtilityResponse(utility))
	}
	return responses
}
