package waypoints

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"net/http"
	"time"

	"trekhub/db"
	"trekhub/models"
	"trekhub/mq"
	"trekhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// POST /api/waypoints
func CreateWaypoint(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var wp models.RouteWaypoint
	if err := json.NewDecoder(r.Body).Decode(&wp); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if wp.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	wp.WaypointID = utils.NewID("wp")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.RouteWaypointsCollection.InsertOne(ctx, wp); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting waypoint")
		return
	}

	mq.Emit("routeWaypoints", "created", wp.WaypointID)
	utils.RespondWithJSON(w, http.StatusCreated, wp)
}

// GET /api/waypoints: route order, by day then insertion.
func GetWaypoints(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.RouteWaypointsCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "day", Value: 1}}))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching waypoints")
		return
	}
	defer cursor.Close(ctx)

	waypoints := []models.RouteWaypoint{}
	if err := cursor.All(ctx, &waypoints); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error decoding waypoints")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, waypoints)
}

// DELETE /api/waypoints/:id
func DeleteWaypoint(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	waypointID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.RouteWaypointsCollection.DeleteOne(ctx, bson.M{"waypointid": waypointID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting waypoint")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Waypoint not found")
		return
	}

	mq.Emit("routeWaypoints", "deleted", waypointID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Waypoint deleted"})
}

// GPX serialization. Rendering stays in the client; this endpoint only
// hands the route over in a format GPS apps understand.

type gpxFile struct {
	XMLName xml.Name `xml:"gpx"`
	Version string   `xml:"version,attr"`
	Creator string   `xml:"creator,attr"`
	Xmlns   string   `xml:"xmlns,attr"`
	Wpts    []gpxWpt `xml:"wpt"`
}

type gpxWpt struct {
	Lat  float64 `xml:"lat,attr"`
	Lon  float64 `xml:"lon,attr"`
	Ele  float64 `xml:"ele,omitempty"`
	Name string  `xml:"name"`
	Desc string  `xml:"desc,omitempty"`
}

// GET /api/waypoints/gpx
func ExportGPX(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	waypoints, err := utils.FindAndDecode[models.RouteWaypoint](ctx, db.RouteWaypointsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching waypoints")
		return
	}

	file := gpxFile{
		Version: "1.1",
		Creator: "trekhub",
		Xmlns:   "http://www.topografix.com/GPX/1/1",
	}
	for _, wp := range waypoints {
		file.Wpts = append(file.Wpts, gpxWpt{
			Lat:  wp.Lat,
			Lon:  wp.Lon,
			Ele:  wp.ElevationM,
			Name: wp.Name,
			Desc: wp.Notes,
		})
	}

	out, err := xml.MarshalIndent(file, "", "  ")
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error encoding GPX")
		return
	}

	w.Header().Set("Content-Type", "application/gpx+xml")
	w.Header().Set("Content-Disposition", "attachment; filename=trek-route.gpx")
	w.Write([]byte(xml.Header))
	w.Write(out)
}
