package app

import (
	"io"
	"os"

	"github.com/antigravity/transport-catalogue/internal/applog"
	"github.com/antigravity/transport-catalogue/internal/snapshot"
	"github.com/antigravity/transport-catalogue/internal/transitrouter"
	"github.com/antigravity/transport-catalogue/internal/value"
	"github.com/pkg/errors"
)

// RunMakeBase implements the make_base mode of spec §4.7/§6: read a
// structured-value document from r, build the catalogue and settings, and
// write the binary snapshot to the configured file.
func RunMakeBase(r io.Reader, log *applog.Logger) error {
	log.BuildStarted()

	doc, err := value.Parse(r)
	if err != nil {
		return errors.Wrap(err, "parse make_base request document")
	}

	input, err := ParseBuildDocument(doc)
	if err != nil {
		return errors.Wrap(err, "build catalogue from request document")
	}

	f, err := os.Create(input.SnapshotFile)
	if err != nil {
		return errors.Wrapf(err, "create snapshot file %q", input.SnapshotFile)
	}
	defer f.Close()

	snap := snapshot.Snapshot{
		Catalogue:       input.Catalogue,
		RenderSettings:  input.RenderSettings,
		RoutingSettings: input.RoutingSettings,
	}
	if err := snapshot.Encode(f, snap); err != nil {
		return errors.Wrapf(err, "write snapshot file %q", input.SnapshotFile)
	}

	log.BuildCompleted(len(input.Catalogue.Stops()), len(input.Catalogue.Buses()), len(input.Catalogue.ExplicitRoads()))
	return nil
}

// RunProcessRequests implements the process_requests mode: read a document
// from r, load the snapshot, build the renderer and router once, dispatch
// every stat_requests entry, and write the response document to w.
func RunProcessRequests(r io.Reader, w io.Writer, log *applog.Logger) error {
	log.ServeStarted()

	doc, err := value.Parse(r)
	if err != nil {
		return errors.Wrap(err, "parse process_requests document")
	}

	file, requests, err := ParseServeDocument(doc)
	if err != nil {
		return errors.Wrap(err, "parse process_requests request document")
	}

	f, err := os.Open(file)
	if err != nil {
		return errors.Wrapf(err, "open snapshot file %q", file)
	}
	defer f.Close()

	snap, err := snapshot.Decode(f)
	if err != nil {
		return errors.Wrapf(err, "decode snapshot file %q", file)
	}
	log.SnapshotLoaded(len(snap.Catalogue.Stops()), len(snap.Catalogue.Buses()))

	router := transitrouter.Build(snap.Catalogue, snap.RoutingSettings)
	log.RoutingGraphBuilt(router.VertexCount())

	engine := &Engine{
		Catalogue:      snap.Catalogue,
		RenderSettings: snap.RenderSettings,
		Router:         router,
	}

	response, err := engine.DispatchAll(requests)
	if err != nil {
		return errors.Wrap(err, "dispatch stat_requests")
	}
	log.QueriesDispatched(len(requests))

	return errors.Wrap(value.Print(w, response), "write response document")
}
