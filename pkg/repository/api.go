// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/klog/v2"
	"korrecte.dev/korrecte/pkg/kinds"
	"korrecte.dev/korrecte/pkg/metrics"
	"korrecte.dev/korrecte/pkg/object"
	"korrecte.dev/korrecte/pkg/status"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// maxConcurrentLists bounds the number of list requests in flight.
const maxConcurrentLists = 4

type listFunc func(ctx context.Context, c kubernetes.Interface) ([]client.Object, error)

var listers = map[object.Type]listFunc{
	object.FromGVK(kinds.Node()): func(ctx context.Context, c kubernetes.Interface) ([]client.Object, error) {
		l, err := c.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return items(l.Items), nil
	},
	object.FromGVK(kinds.Pod()): func(ctx context.Context, c kubernetes.Interface) ([]client.Object, error) {
		l, err := c.CoreV1().Pods(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return items(l.Items), nil
	},
	object.FromGVK(kinds.Service()): func(ctx context.Context, c kubernetes.Interface) ([]client.Object, error) {
		l, err := c.CoreV1().Services(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return items(l.Items), nil
	},
	object.FromGVK(kinds.DaemonSet()): func(ctx context.Context, c kubernetes.Interface) ([]client.Object, error) {
		l, err := c.AppsV1().DaemonSets(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return items(l.Items), nil
	},
	object.FromGVK(kinds.Deployment()): func(ctx context.Context, c kubernetes.Interface) ([]client.Object, error) {
		l, err := c.AppsV1().Deployments(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return items(l.Items), nil
	},
	object.FromGVK(kinds.ReplicaSet()): func(ctx context.Context, c kubernetes.Interface) ([]client.Object, error) {
		l, err := c.AppsV1().ReplicaSets(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return items(l.Items), nil
	},
	object.FromGVK(kinds.StatefulSet()): func(ctx context.Context, c kubernetes.Interface) ([]client.Object, error) {
		l, err := c.AppsV1().StatefulSets(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return items(l.Items), nil
	},
	object.FromGVK(kinds.PodDisruptionBudget()): func(ctx context.Context, c kubernetes.Interface) ([]client.Object, error) {
		l, err := c.PolicyV1beta1().PodDisruptionBudgets(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return items(l.Items), nil
	},
	object.FromGVK(kinds.HorizontalPodAutoscaler()): func(ctx context.Context, c kubernetes.Interface) ([]client.Object, error) {
		l, err := c.AutoscalingV1().HorizontalPodAutoscalers(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return items(l.Items), nil
	},
	object.FromGVK(kinds.HorizontalPodAutoscalerV2Beta1()): func(ctx context.Context, c kubernetes.Interface) ([]client.Object, error) {
		l, err := c.AutoscalingV2beta1().HorizontalPodAutoscalers(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return items(l.Items), nil
	},
	object.FromGVK(kinds.HorizontalPodAutoscalerV2Beta2()): func(ctx context.Context, c kubernetes.Interface) ([]client.Object, error) {
		l, err := c.AutoscalingV2beta2().HorizontalPodAutoscalers(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return items(l.Items), nil
	},
	object.FromGVK(kinds.Ingress()): func(ctx context.Context, c kubernetes.Interface) ([]client.Object, error) {
		l, err := c.NetworkingV1beta1().Ingresses(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return items(l.Items), nil
	},
	object.FromGVK(kinds.ExtensionsIngress()): func(ctx context.Context, c kubernetes.Interface) ([]client.Object, error) {
		l, err := c.ExtensionsV1beta1().Ingresses(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return items(l.Items), nil
	},
	object.FromGVK(kinds.ClusterRole()): func(ctx context.Context, c kubernetes.Interface) ([]client.Object, error) {
		l, err := c.RbacV1().ClusterRoles().List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return items(l.Items), nil
	},
	object.FromGVK(kinds.Role()): func(ctx context.Context, c kubernetes.Interface) ([]client.Object, error) {
		l, err := c.RbacV1().Roles(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return items(l.Items), nil
	},
}

// items converts a typed list into objects, pointing into the list's backing
// array.
func items[T any, PT interface {
	*T
	client.Object
}](list []T) []client.Object {
	objs := make([]client.Object, len(list))
	for i := range list {
		objs[i] = PT(&list[i])
	}
	return objs
}

// FromCluster lists every supported object type from the cluster behind
// clientset. Types are listed in parallel, but the returned objects keep the
// order of object.Types().
//
// Types the server does not serve are skipped. Any other list failure fails
// the whole snapshot, after every type has been tried. A cancelled ctx stops
// the listing. An unknown server version is not an error.
func FromCluster(ctx context.Context, clientset kubernetes.Interface) (*Snapshot, error) {
	types := object.Types()
	results := make([][]client.Object, len(types))
	errs := make([]error, len(types))

	var g errgroup.Group
	g.SetLimit(maxConcurrentLists)
	for i, t := range types {
		list, ok := listers[t]
		if !ok {
			klog.Warningf("No lister registered for %s", t)
			continue
		}
		g.Go(func() error {
			objs, err := list(ctx, clientset)
			switch {
			case err == nil:
			case ctx.Err() != nil:
				return ctx.Err()
			case apierrors.IsNotFound(err):
				klog.V(1).Infof("Skipping %s: not served by the API server", t)
				return nil
			default:
				// Keep listing so every failing type is reported at once.
				errs[i] = status.APIServerErrorf(err, "failed to list %s", t)
				return nil
			}
			for _, obj := range objs {
				obj.GetObjectKind().SetGroupVersionKind(t.GroupVersionKind())
			}
			results[i] = objs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}

	var objects []client.Object
	for _, objs := range results {
		objects = append(objects, objs...)
	}
	metrics.Metrics.ObjectsLoaded.WithLabelValues(SourceAPI).Add(float64(len(objects)))

	return New(objects, serverVersion(clientset)), nil
}

func serverVersion(clientset kubernetes.Interface) *Version {
	info, err := clientset.Discovery().ServerVersion()
	if err != nil {
		klog.Warningf("Failed to get the API server version: %v", err)
		return nil
	}
	v, err := FromServerVersion(info)
	if err != nil {
		klog.Warningf("Ignoring API server version: %v", err)
		return nil
	}
	klog.V(1).Infof("API server version %s", v)
	return v
}
