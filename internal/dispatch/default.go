package dispatch

import (
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform/dialpad"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform/ringcentral"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform/ssot"
)

// ConfigSource supplies the per-job-type transformation config;
// *repository.TransformationConfigRepository implements it.
type ConfigSource interface {
	Config(jobTypeCode string) (map[string]interface{}, error)
}

// loadConfig fetches a transformation config, degrading to nil (engine
// defaults) on any fetch failure. Factories run on first use and the built
// transformer is cached, so the config is loaded once per job type.
func loadConfig(src ConfigSource, code string) map[string]interface{} {
	if src == nil {
		return nil
	}
	config, err := src.Config(code)
	if err != nil {
		log.Warnf("could not load transformation config for %s, using defaults: %v", code, err)
		return nil
	}
	return config
}

// DefaultRegistry wires the three supported platform pairs. The SSOT
// dispatcher is the only one that reads field mappings and transformation
// configs, so it is the only one taking the sources.
func DefaultRegistry(mappings ssot.MappingSource, configs ConfigSource) *Registry {
	r := NewRegistry()
	r.Register("ringcentral", "zoom", NewRingCentralDispatcher)
	r.Register("ssot", "zoom", func() *Dispatcher { return NewSSOTDispatcher(mappings, configs) })
	r.Register("dialpad", "zoom", NewDialpadDispatcher)
	return r
}

// NewRingCentralDispatcher routes the rc_zoom_* job types.
func NewRingCentralDispatcher() *Dispatcher {
	d := NewDispatcher("ringcentral", "zoom")
	d.RegisterJobType("rc_zoom_sites", func() transform.Transformer { return ringcentral.NewSitesTransformer() })
	d.RegisterJobType("rc_zoom_users", func() transform.Transformer { return ringcentral.NewUsersTransformer() })
	d.RegisterJobType("rc_zoom_call_queues", func() transform.Transformer { return ringcentral.NewCallQueuesTransformer() })
	d.RegisterJobType("rc_zoom_ars", func() transform.Transformer { return ringcentral.NewAutoReceptionistsTransformer() })
	d.RegisterJobType("rc_zoom_ivr", func() transform.Transformer { return ringcentral.NewIVRTransformer() })
	return d
}

// SSOT job type ids, from the provisioning job catalog.
const (
	ssotSitesJobTypeID             = 33
	ssotUsersJobTypeID             = 39
	ssotCallQueuesJobTypeID        = 45
	ssotAutoReceptionistsJobTypeID = 77
	ssotIVRJobTypeID               = 78
)

// NewSSOTDispatcher routes the ssot_to_zoom_* job types. Jobs arrive with
// either the code or the numeric id, so both are registered.
func NewSSOTDispatcher(mappings ssot.MappingSource, configs ConfigSource) *Dispatcher {
	d := NewDispatcher("ssot", "zoom")

	d.RegisterJobType("ssot_to_zoom_sites", func() transform.Transformer {
		return ssot.NewSitesTransformer(mappings, ssotSitesJobTypeID, loadConfig(configs, "ssot_to_zoom_sites"))
	})
	d.RegisterJobType("ssot_to_zoom_users", func() transform.Transformer {
		return ssot.NewUsersTransformer(mappings, ssotUsersJobTypeID, loadConfig(configs, "ssot_to_zoom_users"))
	})
	d.RegisterJobType("ssot_to_zoom_call_queues", func() transform.Transformer {
		return ssot.NewCallQueuesTransformer(mappings, ssotCallQueuesJobTypeID)
	})
	d.RegisterJobType("ssot_to_zoom_auto_receptionists", func() transform.Transformer {
		return ssot.NewAutoReceptionistsTransformer(mappings, ssotAutoReceptionistsJobTypeID)
	})
	d.RegisterJobType("ssot_to_zoom_ivr", func() transform.Transformer {
		return ssot.NewIVRTransformer()
	})

	d.RegisterJobTypeID(ssotSitesJobTypeID, "ssot_to_zoom_sites")
	d.RegisterJobTypeID(ssotUsersJobTypeID, "ssot_to_zoom_users")
	d.RegisterJobTypeID(ssotCallQueuesJobTypeID, "ssot_to_zoom_call_queues")
	d.RegisterJobTypeID(ssotAutoReceptionistsJobTypeID, "ssot_to_zoom_auto_receptionists")
	d.RegisterJobTypeID(ssotIVRJobTypeID, "ssot_to_zoom_ivr")

	return d
}

// NewDialpadDispatcher routes the dp_zoom_* job types.
func NewDialpadDispatcher() *Dispatcher {
	d := NewDispatcher("dialpad", "zoom")
	d.RegisterJobType("dp_zoom_sites", func() transform.Transformer { return dialpad.NewSitesTransformer() })
	d.RegisterJobType("dp_zoom_users", func() transform.Transformer { return dialpad.NewUsersTransformer() })
	d.RegisterJobType("dp_zoom_call_queues", func() transform.Transformer { return dialpad.NewCallQueuesTransformer() })
	d.RegisterJobType("dp_zoom_ars", func() transform.Transformer { return dialpad.NewAutoReceptionistsTransformer() })
	d.RegisterJobType("dp_zoom_ivr", func() transform.Transformer { return dialpad.NewIVRTransformer() })
	return d
}
